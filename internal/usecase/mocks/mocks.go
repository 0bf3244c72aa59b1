package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/usecase"
)

// MockTransactionRepository is an in-memory TransactionRepository. Rows are
// appended on Create with sequential ids, mirroring the store's behavior.
type MockTransactionRepository struct {
	mu     sync.RWMutex
	rows   []*domain.Transaction
	nextID int64

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	GetByIDFunc              func(ctx context.Context, id int64) (*domain.Transaction, error)
	ListFunc                 func(ctx context.Context) ([]*domain.Transaction, error)
	SumForAccountBetweenFunc func(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{nextID: 1}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	txn.TxnID = m.nextID
	m.nextID++
	m.rows = append(m.rows, txn)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, txn := range m.rows {
		if txn.TxnID == id {
			return txn, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Transaction(nil), m.rows...), nil
}

func (m *MockTransactionRepository) SumForAccountBetween(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error) {
	if m.SumForAccountBetweenFunc != nil {
		return m.SumForAccountBetweenFunc(ctx, accountID, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, txn := range m.rows {
		if txn.AccountID == nil || *txn.AccountID != accountID {
			continue
		}
		if txn.CreatedDt.Before(from) || !txn.CreatedDt.Before(to) {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total, nil
}

// Rows returns a copy of the stored rows.
func (m *MockTransactionRepository) Rows() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Transaction(nil), m.rows...)
}

// MockIdempotencyRepository is an in-memory IdempotencyRepository.
type MockIdempotencyRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.IdempotencyRecord

	GetFunc    func(ctx context.Context, key, requestHash string) (*domain.IdempotencyRecord, error)
	CreateFunc func(ctx context.Context, tx usecase.Transaction, record *domain.IdempotencyRecord) error
}

func NewMockIdempotencyRepository() *MockIdempotencyRepository {
	return &MockIdempotencyRepository{records: make(map[string]*domain.IdempotencyRecord)}
}

func (m *MockIdempotencyRepository) Get(ctx context.Context, key, requestHash string) (*domain.IdempotencyRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, requestHash)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records[key+"|"+requestHash], nil
}

func (m *MockIdempotencyRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.IdempotencyRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.Key+"|"+record.RequestHash] = record
	return nil
}

// MockTransaction records commit/rollback calls.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	mu  sync.Mutex
	txs []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.txs = append(m.txs, tx)
	return tx, nil
}

// LastTx returns the most recently begun transaction, or nil.
func (m *MockTransactionManager) LastTx() *MockTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.txs) == 0 {
		return nil
	}
	return m.txs[len(m.txs)-1]
}

// PassthroughRetrier runs the operation exactly once.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockIDGenerator returns a fixed id unless overridden.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "mock-id"
}

// MockCache is an in-memory Cache.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	GetFunc func(ctx context.Context, key string) ([]byte, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// StubAccountService is a Func-style AccountService double.
type StubAccountService struct {
	CheckFunc         func(ctx context.Context, accountID int64, counterpartyID string) (*usecase.AccountCheckResult, error)
	UpdateBalanceFunc func(ctx context.Context, input usecase.UpdateBalanceInput) error

	mu          sync.Mutex
	CheckCalls  int
	UpdateCalls int
	LastUpdate  usecase.UpdateBalanceInput
}

func (s *StubAccountService) Check(ctx context.Context, accountID int64, counterpartyID string) (*usecase.AccountCheckResult, error) {
	s.mu.Lock()
	s.CheckCalls++
	s.mu.Unlock()
	if s.CheckFunc != nil {
		return s.CheckFunc(ctx, accountID, counterpartyID)
	}
	return &usecase.AccountCheckResult{
		Account:      usecase.PartyState{Status: usecase.AccountStatusActive, Balance: decimal.NewFromInt(1000000)},
		Counterparty: usecase.PartyState{Status: usecase.AccountStatusActive, Balance: decimal.Zero},
	}, nil
}

func (s *StubAccountService) UpdateBalance(ctx context.Context, input usecase.UpdateBalanceInput) error {
	s.mu.Lock()
	s.UpdateCalls++
	s.LastUpdate = input
	s.mu.Unlock()
	if s.UpdateBalanceFunc != nil {
		return s.UpdateBalanceFunc(ctx, input)
	}
	return nil
}

// StubNotifier is a Func-style Notifier double.
type StubNotifier struct {
	NotifyFunc func(ctx context.Context, n usecase.Notification) error

	mu    sync.Mutex
	Calls []usecase.Notification
}

func (s *StubNotifier) Notify(ctx context.Context, n usecase.Notification) error {
	s.mu.Lock()
	s.Calls = append(s.Calls, n)
	s.mu.Unlock()
	if s.NotifyFunc != nil {
		return s.NotifyFunc(ctx, n)
	}
	return nil
}

// StubDriftPublisher is a Func-style DriftPublisher double.
type StubDriftPublisher struct {
	PublishDriftFunc func(ctx context.Context, event domain.SettlementDriftEvent) error

	mu     sync.Mutex
	Events []domain.SettlementDriftEvent
}

func (s *StubDriftPublisher) PublishDrift(ctx context.Context, event domain.SettlementDriftEvent) error {
	s.mu.Lock()
	s.Events = append(s.Events, event)
	s.mu.Unlock()
	if s.PublishDriftFunc != nil {
		return s.PublishDriftFunc(ctx, event)
	}
	return nil
}
