package storage

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type SessionStorage interface {
	Get(ctx context.Context, token string) (*Session, error)
	Put(ctx context.Context, session *Session) error
	Delete(ctx context.Context, token string) error
}

type DynamoSessionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSessionStorage) Get(ctx context.Context, token string) (*Session, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": token})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: GetItem failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := attributevalue.UnmarshalMap(out.Item, &session); err != nil {
		logging.Log.Errorf("SESSION: failed to unmarshal session: %v", err)
		return nil, err
	}
	return &session, nil
}

func (s *DynamoSessionStorage) Put(ctx context.Context, session *Session) error {
	item, err := attributevalue.MarshalMap(session)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal session: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to put session: %v", err)
		return err
	}
	return nil
}

func (s *DynamoSessionStorage) Delete(ctx context.Context, token string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": token})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal delete key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to delete session: %v", err)
		return err
	}
	return nil
}

// FileSessionStorage persists sessions in a JSON file so logins survive a
// local dashboard restart.
type FileSessionStorage struct {
	Path string
	mu   sync.Mutex
}

func (s *FileSessionStorage) load() map[string]*Session {
	sessions := map[string]*Session{}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return sessions
	}
	if err := json.Unmarshal(data, &sessions); err != nil {
		logging.Log.Warnf("SESSION: ignoring malformed session file %s: %v", s.Path, err)
		return map[string]*Session{}
	}
	return sessions
}

func (s *FileSessionStorage) save(sessions map[string]*Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

func (s *FileSessionStorage) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.load()[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *FileSessionStorage) Put(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.load()
	sessions[session.Token] = session
	if err := s.save(sessions); err != nil {
		logging.Log.Errorf("SESSION: failed to save session file %s: %v", s.Path, err)
		return err
	}
	return nil
}

func (s *FileSessionStorage) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.load()
	delete(sessions, token)
	if err := s.save(sessions); err != nil {
		logging.Log.Errorf("SESSION: failed to save session file %s: %v", s.Path, err)
		return err
	}
	return nil
}
