package media

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"leadpro/internal/entity"
)

// TTL: mídias expiram sozinhas em 30 dias, sem job de limpeza.
const mediaTTL = 30 * 24 * time.Hour

type Metadata struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	MimeType   string `json:"mimeType"`
	Size       int    `json:"size"`
	UploadedAt string `json:"uploadedAt"`
}

// Store guarda binários de interações num cache chave-valor: o conteúdo em
// media:<id> (base64) e os metadados em media:<id>:metadata (JSON), ambos com
// o mesmo TTL.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// NewRedisClient abre o cliente e valida a conexão com PING.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping falhou: %w", err)
	}
	return client, nil
}

func contentKey(id string) string  { return "media:" + id }
func metadataKey(id string) string { return "media:" + id + ":metadata" }

func (s *Store) Save(ctx context.Context, data []byte, filename, mimeType string) (*Metadata, error) {
	id := uuid.New().String()

	metadata := &Metadata{
		ID:         id,
		Filename:   filename,
		MimeType:   mimeType,
		Size:       len(data),
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	if err := s.client.Set(ctx, contentKey(id), encoded, mediaTTL).Err(); err != nil {
		return nil, fmt.Errorf("erro ao salvar mídia no Redis: %w", err)
	}
	if err := s.client.Set(ctx, metadataKey(id), metadataJSON, mediaTTL).Err(); err != nil {
		return nil, fmt.Errorf("erro ao salvar metadados no Redis: %w", err)
	}

	return metadata, nil
}

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// Get devolve o conteúdo e os metadados. Valores gravados por versões antigas
// podem estar em bytes crus em vez de base64; a detecção cobre os dois casos.
func (s *Store) Get(ctx context.Context, id string) ([]byte, *Metadata, error) {
	raw, err := s.client.Get(ctx, contentKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil, entity.ErrMediaNotFound
		}
		return nil, nil, err
	}

	metadataJSON, err := s.client.Get(ctx, metadataKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil, entity.ErrMediaNotFound
		}
		return nil, nil, err
	}

	var metadata Metadata
	if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
		return nil, nil, err
	}

	var data []byte
	if base64Pattern.MatchString(raw) {
		data, err = base64.StdEncoding.DecodeString(raw)
		if err != nil {
			data = []byte(raw)
		}
	} else {
		data = []byte(raw)
	}

	return data, &metadata, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, contentKey(id), metadataKey(id)).Err()
}

func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, contentKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
