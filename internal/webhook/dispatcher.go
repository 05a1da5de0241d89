package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"leadpro/internal/entity"
)

const (
	userAgent    = "LeadPro-Webhook/1.0"
	sourceSystem = "LeadPro"

	// Timeout por entrega: alvo lento ou inalcançável não pode travar o fan-out.
	deliveryTimeout = 5 * time.Second
)

var webhookDeliveries = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "webhook_deliveries_total",
		Help: "Total number of webhook delivery attempts",
	},
	[]string{"event", "result"},
)

// Registry é a consulta que o Dispatcher faz ao cadastro de webhooks.
// Cada dispatch relê o cadastro; nenhum cache em processo.
type Registry interface {
	FindAll(ctx context.Context) ([]entity.Webhook, error)
}

type Dispatcher struct {
	registry Registry
	client   *http.Client
}

func NewDispatcher(registry Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		client:   &http.Client{Timeout: deliveryTimeout},
	}
}

// Dispatch entrega o payload a todos os webhooks ativos inscritos no evento.
// Fan-out sem ordem, entregas concorrentes e isoladas: a falha de um alvo nunca
// impede a entrega aos demais e nunca volta para quem disparou o evento.
func (d *Dispatcher) Dispatch(ctx context.Context, p Payload) {
	webhooks, err := d.registry.FindAll(ctx)
	if err != nil {
		log.Printf("❌ [DISPATCHER] Erro ao carregar webhooks: %v", err)
		return
	}

	var wg sync.WaitGroup
	for i := range webhooks {
		w := webhooks[i]
		if !w.Active || !w.SubscribedTo(p.Event) {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			filtered := FilterPayload(&w, p)
			if err := d.send(ctx, w.URL, string(p.Event), filtered); err != nil {
				webhookDeliveries.WithLabelValues(string(p.Event), "error").Inc()
				log.Printf("⚠️ Webhook %s falhou para evento %s: %v", w.Name, p.Event, err)
				return
			}
			webhookDeliveries.WithLabelValues(string(p.Event), "success").Inc()
			log.Printf("✅ Webhook %s enviado com sucesso para evento %s", w.Name, p.Event)
		}()
	}
	wg.Wait()
}

type testPayload struct {
	Event     string      `json:"evento"`
	Timestamp string      `json:"timestamp"`
	Message   string      `json:"mensagem"`
	Webhook   *WebhookRef `json:"webhook"`
}

// SendTest monta um payload sintético e entrega a um único webhook, de forma
// síncrona. Diferente do dispatch normal, o resultado aqui É observável.
func (d *Dispatcher) SendTest(ctx context.Context, w *entity.Webhook) bool {
	payload := testPayload{
		Event:     "TEST",
		Timestamp: now(),
		Message:   "Teste de webhook do LeadPro",
		Webhook:   &WebhookRef{ID: w.ID, Name: w.Name},
	}

	if err := d.send(ctx, w.URL, "TEST", payload); err != nil {
		log.Printf("⚠️ Teste do webhook %s falhou: %v", w.Name, err)
		return false
	}
	return true
}

func (d *Dispatcher) send(ctx context.Context, url, event string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Webhook-Event", event)
	req.Header.Set("X-Webhook-Source", sourceSystem)

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("resposta %d do alvo", resp.StatusCode)
	}
	return nil
}
