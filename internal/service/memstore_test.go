package service

import (
	"context"
	"sync"
	"time"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the postgres store with the same
// locking discipline: per-row try-locks that fail fast with
// ErrLockContention, and atomic units whose writes are staged until commit.
// It lets the concurrency properties of the service run against real
// goroutines without a database.
type memStore struct {
	mu           sync.Mutex
	sellers      map[int32]domain.Seller
	requests     map[int32]domain.CreditRequest
	charges      map[int32]domain.ChargeRequest
	phones       map[string]decimal.Decimal
	transactions []domain.Transaction
	nextID       int32

	sellerLocks  map[int32]*sync.Mutex
	requestLocks map[int32]*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		sellers:      make(map[int32]domain.Seller),
		requests:     make(map[int32]domain.CreditRequest),
		charges:      make(map[int32]domain.ChargeRequest),
		phones:       make(map[string]decimal.Decimal),
		sellerLocks:  make(map[int32]*sync.Mutex),
		requestLocks: make(map[int32]*sync.Mutex),
	}
}

func (s *memStore) addSeller(seller domain.Seller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellers[seller.ID] = seller
	s.sellerLocks[seller.ID] = &sync.Mutex{}
}

func (s *memStore) addRequest(req domain.CreditRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID] = req
	s.requestLocks[req.ID] = &sync.Mutex{}
}

func (s *memStore) sellerCredit(id int32) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sellers[id].Credit
}

func (s *memStore) sellerTransactions(id int32) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var txns []domain.Transaction
	for _, txn := range s.transactions {
		if txn.SellerID == id {
			txns = append(txns, txn)
		}
	}
	return txns
}

func (s *memStore) chargeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.charges)
}

func (s *memStore) allocID() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID + 1000
}

// memTx stages writes for one atomic unit and holds the row locks it
// acquired until the unit ends.
type memTx struct {
	store        *memStore
	heldSellers  []int32
	heldRequests []int32

	credits      map[int32]decimal.Decimal
	statuses     map[int32]domain.CreditRequestStatus
	newTxns      []domain.Transaction
	newCharges   []domain.ChargeRequest
	phoneDeltas  map[string]decimal.Decimal
}

func (s *memStore) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	tx := &memTx{
		store:       s,
		credits:     make(map[int32]decimal.Decimal),
		statuses:    make(map[int32]domain.CreditRequestStatus),
		phoneDeltas: make(map[string]decimal.Decimal),
	}
	repos := repository.Repositories{
		Sellers:        &memSellerRepo{tx: tx},
		CreditRequests: &memCreditRequestRepo{tx: tx},
		ChargeRequests: &memChargeRequestRepo{tx: tx},
		PhoneNumbers:   &memPhoneNumberRepo{tx: tx},
		Transactions:   &memTransactionRepo{tx: tx},
	}

	if err := fn(repos); err != nil {
		tx.release()
		return err
	}
	tx.commit()
	tx.release()
	return nil
}

func (tx *memTx) commit() {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, credit := range tx.credits {
		seller := s.sellers[id]
		seller.Credit = credit
		s.sellers[id] = seller
	}
	for id, status := range tx.statuses {
		req := s.requests[id]
		req.Status = status
		s.requests[id] = req
	}
	for _, charge := range tx.newCharges {
		s.charges[charge.ID] = charge
	}
	for number, delta := range tx.phoneDeltas {
		s.phones[number] = s.phones[number].Add(delta)
	}
	s.transactions = append(s.transactions, tx.newTxns...)
}

func (tx *memTx) release() {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range tx.heldSellers {
		s.sellerLocks[id].Unlock()
	}
	for _, id := range tx.heldRequests {
		s.requestLocks[id].Unlock()
	}
	tx.heldSellers = nil
	tx.heldRequests = nil
}

type memSellerRepo struct{ tx *memTx }

func (r *memSellerRepo) Create(ctx context.Context, seller *domain.Seller) error {
	seller.ID = r.tx.store.allocID()
	r.tx.store.addSeller(*seller)
	return nil
}

func (r *memSellerRepo) GetByID(ctx context.Context, id int32) (*domain.Seller, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	seller, ok := s.sellers[id]
	if !ok {
		return nil, domain.ErrSellerNotFound
	}
	return &seller, nil
}

func (r *memSellerRepo) GetByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seller := range s.sellers {
		if seller.Email == email {
			return &seller, nil
		}
	}
	return nil, domain.ErrSellerNotFound
}

func (r *memSellerRepo) GetForUpdate(ctx context.Context, id int32) (*domain.Seller, error) {
	s := r.tx.store
	s.mu.Lock()
	lock, ok := s.sellerLocks[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSellerNotFound
	}
	seller := s.sellers[id]
	s.mu.Unlock()

	if !lock.TryLock() {
		return nil, domain.ErrLockContention
	}
	r.tx.heldSellers = append(r.tx.heldSellers, id)

	// re-read under the row lock; another unit may have committed between
	// the snapshot above and the lock acquisition
	s.mu.Lock()
	seller = s.sellers[id]
	s.mu.Unlock()
	return &seller, nil
}

func (r *memSellerRepo) UpdateCredit(ctx context.Context, id int32, credit decimal.Decimal) error {
	r.tx.credits[id] = credit
	return nil
}

type memCreditRequestRepo struct{ tx *memTx }

func (r *memCreditRequestRepo) Create(ctx context.Context, req *domain.CreditRequest) error {
	req.ID = r.tx.store.allocID()
	req.Status = domain.CreditRequestStatusPending
	r.tx.store.addRequest(*req)
	return nil
}

func (r *memCreditRequestRepo) GetByID(ctx context.Context, id int32) (*domain.CreditRequest, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (r *memCreditRequestRepo) GetForUpdate(ctx context.Context, id int32) (*domain.CreditRequest, error) {
	s := r.tx.store
	s.mu.Lock()
	lock, ok := s.requestLocks[id]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrRequestNotFound
	}

	if !lock.TryLock() {
		return nil, domain.ErrLockContention
	}
	r.tx.heldRequests = append(r.tx.heldRequests, id)

	s.mu.Lock()
	req := s.requests[id]
	s.mu.Unlock()
	return &req, nil
}

func (r *memCreditRequestRepo) UpdateStatus(ctx context.Context, id int32, status domain.CreditRequestStatus) error {
	r.tx.statuses[id] = status
	return nil
}

func (r *memCreditRequestRepo) ListStalePending(ctx context.Context, olderThan time.Time) ([]domain.CreditRequest, error) {
	return nil, nil
}

type memChargeRequestRepo struct{ tx *memTx }

func (r *memChargeRequestRepo) Create(ctx context.Context, req *domain.ChargeRequest) error {
	req.ID = r.tx.store.allocID()
	r.tx.newCharges = append(r.tx.newCharges, *req)
	return nil
}

type memPhoneNumberRepo struct{ tx *memTx }

func (r *memPhoneNumberRepo) AddCharge(ctx context.Context, number string, amount decimal.Decimal) error {
	r.tx.phoneDeltas[number] = r.tx.phoneDeltas[number].Add(amount)
	return nil
}

type memTransactionRepo struct{ tx *memTx }

func (r *memTransactionRepo) Create(ctx context.Context, txn *domain.Transaction) error {
	txn.ID = r.tx.store.allocID()
	r.tx.newTxns = append(r.tx.newTxns, *txn)
	return nil
}

func (r *memTransactionRepo) SumAmounts(ctx context.Context, sellerID int32) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, txn := range r.tx.store.sellerTransactions(sellerID) {
		sum = sum.Add(txn.Amount)
	}
	return sum, nil
}

func (r *memTransactionRepo) CountConservationViolations(ctx context.Context) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, txn := range s.transactions {
		if !txn.CreditAfter.Sub(txn.CreditBefore).Equal(txn.Amount) {
			count++
		}
	}
	return count, nil
}

func (r *memTransactionRepo) ListSellerIDs(ctx context.Context) ([]int32, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[int32]bool)
	var ids []int32
	for _, txn := range s.transactions {
		if !seen[txn.SellerID] {
			seen[txn.SellerID] = true
			ids = append(ids, txn.SellerID)
		}
	}
	return ids, nil
}
