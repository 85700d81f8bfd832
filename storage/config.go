package storage

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type EventConfigStorage interface {
	Get(ctx context.Context, initiative string) (*EventConfig, error)
	GetAll(ctx context.Context) ([]*EventConfig, error)
	Put(ctx context.Context, config *EventConfig) error
	Delete(ctx context.Context, initiative string) error
}

type DynamoEventConfigStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoEventConfigStorage) Get(ctx context.Context, initiative string) (*EventConfig, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": initiative})
	if err != nil {
		logging.Log.Errorf("CONFIG: failed to marshal key for %s: %v", initiative, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CONFIG: GetItem for %s failed: %v", initiative, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var config EventConfig
	if err := attributevalue.UnmarshalMap(out.Item, &config); err != nil {
		logging.Log.Errorf("CONFIG: failed to unmarshal config: %v", err)
		return nil, err
	}
	return &config, nil
}

func (s *DynamoEventConfigStorage) GetAll(ctx context.Context) ([]*EventConfig, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("CONFIG: scan failed: %v", err)
		return nil, err
	}

	var configs []*EventConfig
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &configs); err != nil {
		logging.Log.Errorf("CONFIG: failed to unmarshal list: %v", err)
		return nil, err
	}
	return configs, nil
}

func (s *DynamoEventConfigStorage) Put(ctx context.Context, config *EventConfig) error {
	item, err := attributevalue.MarshalMap(config)
	if err != nil {
		logging.Log.Errorf("CONFIG: failed to marshal config: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("CONFIG: failed to put config for %s: %v", config.Initiative, err)
		return err
	}
	return nil
}

func (s *DynamoEventConfigStorage) Delete(ctx context.Context, initiative string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": initiative})
	if err != nil {
		logging.Log.Errorf("CONFIG: failed to marshal delete key for %s: %v", initiative, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CONFIG: failed to delete config for %s: %v", initiative, err)
		return err
	}
	logging.Log.Infof("CONFIG: deleted config for %s", initiative)
	return nil
}

// FileEventConfigStorage keeps the per-initiative config in a single JSON file
// (initiative name -> entry), the format the dashboard has always used locally.
type FileEventConfigStorage struct {
	Path string
	mu   sync.Mutex
}

func (s *FileEventConfigStorage) load() map[string]*EventConfig {
	configs := map[string]*EventConfig{}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return configs
	}
	if err := json.Unmarshal(data, &configs); err != nil {
		logging.Log.Warnf("CONFIG: ignoring malformed config file %s: %v", s.Path, err)
		return map[string]*EventConfig{}
	}
	return configs
}

func (s *FileEventConfigStorage) save(configs map[string]*EventConfig) error {
	data, err := json.MarshalIndent(configs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o644)
}

func (s *FileEventConfigStorage) Get(_ context.Context, initiative string) (*EventConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, ok := s.load()[initiative]
	if !ok {
		return nil, nil
	}
	config.Initiative = initiative
	return config, nil
}

func (s *FileEventConfigStorage) GetAll(_ context.Context) ([]*EventConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := s.load()
	configs := make([]*EventConfig, 0, len(loaded))
	for initiative, config := range loaded {
		config.Initiative = initiative
		configs = append(configs, config)
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Initiative < configs[j].Initiative
	})
	return configs, nil
}

func (s *FileEventConfigStorage) Put(_ context.Context, config *EventConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs := s.load()
	configs[config.Initiative] = config
	if err := s.save(configs); err != nil {
		logging.Log.Errorf("CONFIG: failed to save config file %s: %v", s.Path, err)
		return err
	}
	return nil
}

func (s *FileEventConfigStorage) Delete(_ context.Context, initiative string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs := s.load()
	delete(configs, initiative)
	if err := s.save(configs); err != nil {
		logging.Log.Errorf("CONFIG: failed to save config file %s: %v", s.Path, err)
		return err
	}
	return nil
}
