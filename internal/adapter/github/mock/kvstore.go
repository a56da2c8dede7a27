package mock

import "sync"

// KVStore mocks github.KVStore.
type KVStore struct {
	data    map[string][]byte
	gets    int
	puts    int
	m       sync.Mutex
	GetErr  error
	PutErr  error
}

// NewKVStore creates new KVStore instance with given data.
func NewKVStore(data map[string][]byte) *KVStore {
	return &KVStore{data: data}
}

// Get returns data saved for given key.
func (s *KVStore) Get(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.gets++
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if s.data == nil {
		return nil, nil
	}

	return s.data[string(key)], nil
}

// Put stores given data under given key.
func (s *KVStore) Put(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.puts++
	if s.PutErr != nil {
		return s.PutErr
	}
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[string(key)] = data

	return nil
}

// Gets returns get call count.
func (s *KVStore) Gets() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.gets
}

// Puts returns put call count.
func (s *KVStore) Puts() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.puts
}

// Data returns stored value for given key.
func (s *KVStore) Data(key string) []byte {
	s.m.Lock()
	defer s.m.Unlock()

	return s.data[key]
}
