// Package webhook implementa o núcleo de eventos do LeadPro: a montagem do
// payload canônico, a filtragem por configuração de webhook e o fan-out das
// entregas HTTP para os alvos cadastrados.
package webhook
