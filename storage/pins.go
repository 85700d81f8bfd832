package storage

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type PinStorage interface {
	List(ctx context.Context) ([]string, error)
	Put(ctx context.Context, initiative string) error
	Delete(ctx context.Context, initiative string) error
}

type DynamoPinStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoPinStorage) List(ctx context.Context) ([]string, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("PIN: scan failed: %v", err)
		return nil, err
	}

	var pins []*Pin
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &pins); err != nil {
		logging.Log.Errorf("PIN: failed to unmarshal list: %v", err)
		return nil, err
	}

	names := make([]string, 0, len(pins))
	for _, pin := range pins {
		names = append(names, pin.Initiative)
	}
	return names, nil
}

func (s *DynamoPinStorage) Put(ctx context.Context, initiative string) error {
	item, err := attributevalue.MarshalMap(&Pin{
		Initiative: initiative,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		logging.Log.Errorf("PIN: failed to marshal pin: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("PIN: failed to put pin for %s: %v", initiative, err)
		return err
	}
	return nil
}

func (s *DynamoPinStorage) Delete(ctx context.Context, initiative string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": initiative})
	if err != nil {
		logging.Log.Errorf("PIN: failed to marshal delete key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PIN: failed to delete pin for %s: %v", initiative, err)
		return err
	}
	return nil
}

// FilePinStorage keeps pinned initiative names in a small JSON file
// ({"pinned": [...]}) so pins survive refresh and re-login.
type FilePinStorage struct {
	Path string
	mu   sync.Mutex
}

type pinnedFile struct {
	Pinned []string `json:"pinned"`
}

func (s *FilePinStorage) load() []string {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return []string{}
	}
	var f pinnedFile
	if err := json.Unmarshal(data, &f); err != nil {
		logging.Log.Warnf("PIN: ignoring malformed pin file %s: %v", s.Path, err)
		return []string{}
	}
	if f.Pinned == nil {
		return []string{}
	}
	return f.Pinned
}

func (s *FilePinStorage) save(pinned []string) error {
	data, err := json.MarshalIndent(pinnedFile{Pinned: pinned}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o644)
}

func (s *FilePinStorage) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

func (s *FilePinStorage) Put(_ context.Context, initiative string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pinned := s.load()
	for _, name := range pinned {
		if name == initiative {
			return nil
		}
	}
	pinned = append(pinned, initiative)
	if err := s.save(pinned); err != nil {
		logging.Log.Errorf("PIN: failed to save pin file %s: %v", s.Path, err)
		return err
	}
	return nil
}

func (s *FilePinStorage) Delete(_ context.Context, initiative string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pinned := s.load()
	kept := make([]string, 0, len(pinned))
	for _, name := range pinned {
		if name != initiative {
			kept = append(kept, name)
		}
	}
	if err := s.save(kept); err != nil {
		logging.Log.Errorf("PIN: failed to save pin file %s: %v", s.Path, err)
		return err
	}
	return nil
}
