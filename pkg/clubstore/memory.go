package clubstore

import (
	"context"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

type playerKey struct {
	campaign common.Address
	identity common.Address
}

type memState struct {
	admins    map[common.Address]struct{}
	houses    map[common.Address]house.House
	campaigns map[common.Address]campaign.Campaign
	players   map[playerKey]player.Player
	balances  map[ledger.Account]uint64
}

func newMemState() *memState {
	return &memState{
		admins:    make(map[common.Address]struct{}),
		houses:    make(map[common.Address]house.House),
		campaigns: make(map[common.Address]campaign.Campaign),
		players:   make(map[playerKey]player.Player),
		balances:  make(map[ledger.Account]uint64),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k := range s.admins {
		c.admins[k] = struct{}{}
	}
	for k, v := range s.houses {
		c.houses[k] = v
	}
	for k, v := range s.campaigns {
		c.campaigns[k] = v
	}
	for k, v := range s.players {
		c.players[k] = copyPlayer(v)
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	return c
}

func copyPlayer(p player.Player) player.Player {
	if p.Stake != nil {
		stake := *p.Stake
		p.Stake = &stake
	}
	return p
}

// MemoryStore keeps all records in process memory. Transactions are
// serialized behind one mutex and staged on a copy that replaces the
// committed state only when the callback succeeds.
type MemoryStore struct {
	mu     sync.Mutex
	state  *memState
	ledger ledger.Ledger
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithLedger routes value movements to l instead of the built-in balances.
func WithLedger(l ledger.Ledger) MemoryOption {
	return func(s *MemoryStore) { s.ledger = l }
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{state: newMemState()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunInTx runs fn against a staged copy of the state.
func (s *MemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	tx := &memTx{state: staged, external: s.ledger}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *MemoryStore) GetHouse(_ context.Context, id common.Address) (*house.House, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.state.houses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &h, nil
}

func (s *MemoryStore) GetCampaign(_ context.Context, id common.Address) (*campaign.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.state.campaigns[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) GetPlayer(_ context.Context, campaignID, identityKey common.Address) (*player.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.players[playerKey{campaignID, identityKey}]
	if !ok {
		return nil, ErrNotFound
	}
	p = copyPlayer(p)
	return &p, nil
}

func (s *MemoryStore) ListCampaigns(_ context.Context) ([]*campaign.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*campaign.Campaign, 0, len(s.state.campaigns))
	for _, c := range s.state.campaigns {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) Balance(ctx context.Context, account ledger.Account) (uint64, error) {
	if s.ledger != nil {
		return s.ledger.Balance(ctx, account)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.balances[account], nil
}

// Deposit credits account outside of any operation, for seeding balances.
func (s *MemoryStore) Deposit(ctx context.Context, account ledger.Account, amount uint64) error {
	return s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Deposit(ctx, account, amount)
	})
}

type memTx struct {
	state    *memState
	external ledger.Ledger
}

func (t *memTx) ProgramAdminExists(_ context.Context, admin common.Address) (bool, error) {
	_, ok := t.state.admins[admin]
	return ok, nil
}

func (t *memTx) CreateProgramAdmin(_ context.Context, admin common.Address) error {
	if _, ok := t.state.admins[admin]; ok {
		return ErrAlreadyExists
	}
	t.state.admins[admin] = struct{}{}
	return nil
}

func (t *memTx) DeleteProgramAdmin(_ context.Context, admin common.Address) error {
	if _, ok := t.state.admins[admin]; !ok {
		return ErrNotFound
	}
	delete(t.state.admins, admin)
	return nil
}

func (t *memTx) LockHouse(_ context.Context, id common.Address) (*house.House, error) {
	h, ok := t.state.houses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &h, nil
}

func (t *memTx) CreateHouse(_ context.Context, h *house.House) error {
	if _, ok := t.state.houses[h.ID]; ok {
		return ErrAlreadyExists
	}
	t.state.houses[h.ID] = *h
	return nil
}

func (t *memTx) UpdateHouse(_ context.Context, h *house.House) error {
	if _, ok := t.state.houses[h.ID]; !ok {
		return ErrNotFound
	}
	t.state.houses[h.ID] = *h
	return nil
}

func (t *memTx) LockCampaign(_ context.Context, id common.Address) (*campaign.Campaign, error) {
	c, ok := t.state.campaigns[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (t *memTx) CreateCampaign(_ context.Context, c *campaign.Campaign) error {
	if _, ok := t.state.campaigns[c.ID]; ok {
		return ErrAlreadyExists
	}
	t.state.campaigns[c.ID] = *c
	return nil
}

func (t *memTx) UpdateCampaign(_ context.Context, c *campaign.Campaign) error {
	if _, ok := t.state.campaigns[c.ID]; !ok {
		return ErrNotFound
	}
	t.state.campaigns[c.ID] = *c
	return nil
}

func (t *memTx) DeleteCampaign(_ context.Context, id common.Address) error {
	if _, ok := t.state.campaigns[id]; !ok {
		return ErrNotFound
	}
	delete(t.state.campaigns, id)
	return nil
}

func (t *memTx) LockPlayer(_ context.Context, campaignID, identityKey common.Address) (*player.Player, error) {
	p, ok := t.state.players[playerKey{campaignID, identityKey}]
	if !ok {
		return nil, ErrNotFound
	}
	p = copyPlayer(p)
	return &p, nil
}

func (t *memTx) SavePlayer(_ context.Context, p *player.Player) error {
	t.state.players[playerKey{p.Campaign, p.Identity.Key}] = copyPlayer(*p)
	return nil
}

func (t *memTx) DeletePlayer(_ context.Context, campaignID, identityKey common.Address) error {
	k := playerKey{campaignID, identityKey}
	if _, ok := t.state.players[k]; !ok {
		return ErrNotFound
	}
	delete(t.state.players, k)
	return nil
}

func (t *memTx) Transfer(ctx context.Context, amount uint64, from ledger.Account, to common.Address, authority common.Address) error {
	if t.external != nil {
		return t.external.Transfer(ctx, amount, from, to, authority)
	}
	if err := ledger.Authorize(from, authority); err != nil {
		return err
	}
	dest := ledger.NewAccount(to, from.Asset)
	src, err := ledger.Debit(t.state.balances[from], amount)
	if err != nil {
		return err
	}
	t.state.balances[from] = src
	dst, err := ledger.Credit(t.state.balances[dest], amount)
	if err != nil {
		return err
	}
	t.state.balances[dest] = dst
	return nil
}

func (t *memTx) Burn(ctx context.Context, amount uint64, from ledger.Account, authority common.Address) error {
	if t.external != nil {
		return t.external.Burn(ctx, amount, from, authority)
	}
	if err := ledger.Authorize(from, authority); err != nil {
		return err
	}
	left, err := ledger.Debit(t.state.balances[from], amount)
	if err != nil {
		return err
	}
	t.state.balances[from] = left
	return nil
}

func (t *memTx) Balance(ctx context.Context, account ledger.Account) (uint64, error) {
	if t.external != nil {
		return t.external.Balance(ctx, account)
	}
	return t.state.balances[account], nil
}

func (t *memTx) Deposit(ctx context.Context, account ledger.Account, amount uint64) error {
	if t.external != nil {
		return t.external.Deposit(ctx, account, amount)
	}
	v, err := ledger.Credit(t.state.balances[account], amount)
	if err != nil {
		return err
	}
	t.state.balances[account] = v
	return nil
}
