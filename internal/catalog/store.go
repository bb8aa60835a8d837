package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"skateshop/storefront/internal/domain"
	"skateshop/storefront/internal/storage"

	log "github.com/sirupsen/logrus"
)

var ErrNegativePrice = errors.New("price must not be negative")

// Observer is told which products to display after every change.
type Observer interface {
	Repaint(products []domain.Product)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(products []domain.Product)

func (f ObserverFunc) Repaint(products []domain.Product) {
	f(products)
}

// Store owns the ordered product list and mirrors it, whole, into a
// storage slot after every mutation. Repaints are delivered in mutation
// order; observers must not call back into Add, Remove or FilterAndNotify.
type Store struct {
	// notifyMu is taken before mu and held until observers have the
	// snapshot, so a later mutation never repaints before an earlier one.
	notifyMu  sync.Mutex
	mu        sync.Mutex
	slot      storage.Slot
	key       string
	ids       IDGenerator
	seed      []domain.NewProduct
	products  []domain.Product
	observers []Observer
}

type Option func(*Store)

// WithKey overrides the storage slot key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithSeed replaces the default inventory used by Initialize.
func WithSeed(seed []domain.NewProduct) Option {
	return func(s *Store) {
		s.seed = seed
	}
}

func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observers = append(s.observers, o)
	}
}

func NewStore(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:     slot,
		key:      storage.DefaultKey,
		ids:      NewULIDGenerator(),
		seed:     DefaultInventory(),
		products: make([]domain.Product, 0),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Subscribe registers an observer for subsequent repaints.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, o)
}

// Initialize loads the persisted list. Missing or unreadable data counts as
// an empty list, which is then seeded item by item through Add.
func (s *Store) Initialize(ctx context.Context) error {
	products := s.load(ctx)

	s.notifyMu.Lock()
	s.mu.Lock()
	s.products = products
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if len(products) > 0 {
		log.Infof("📦 Loaded %d products from slot %s", len(products), s.key)
		s.notify(snapshot)
		s.notifyMu.Unlock()
		return nil
	}
	s.notifyMu.Unlock()

	log.Infof("🌱 Slot %s is empty, seeding %d default products", s.key, len(s.seed))
	for _, item := range s.seed {
		if _, err := s.Add(ctx, item); err != nil {
			return fmt.Errorf("failed to seed %s: %w", item.Title, err)
		}
	}

	return nil
}

func (s *Store) load(ctx context.Context) []domain.Product {
	data, err := s.slot.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotEmpty) {
			log.Warnf("Failed to read slot %s, starting empty: %v", s.key, err)
		}
		return make([]domain.Product, 0)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Warnf("Slot %s holds unreadable data, starting empty: %v", s.key, err)
		return make([]domain.Product, 0)
	}
	if products == nil {
		products = make([]domain.Product, 0)
	}
	return products
}

// Add appends a new product with a fresh id, persists the list and repaints
// the full list. The category path is not checked against the hierarchy.
func (s *Store) Add(ctx context.Context, in domain.NewProduct) (domain.Product, error) {
	if in.Price.IsNegative() {
		return domain.Product{}, fmt.Errorf("add %s: %w", in.Title, ErrNegativePrice)
	}

	product := domain.Product{
		ID:          s.ids.NewID(),
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Category: domain.Category{
			Main: in.Main,
			Sub:  in.Sub,
			Type: in.Type,
		},
		Image: in.Image,
	}
	if product.Image == "" {
		product.Image = domain.PlaceholderImage
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.products = append(s.products, product)
	snapshot := s.snapshotLocked()
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snapshot)
	if err != nil {
		return product, err
	}

	log.Infof("Added %s to inventory.", product.Title)
	return product, nil
}

// Remove drops the product with the given id. Unknown ids leave the list as
// it is; the list is persisted and repainted either way.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i:i], s.products[i+1:]...)
			break
		}
	}
	snapshot := s.snapshotLocked()
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(snapshot)
	return err
}

// Filter returns, in list order, the products whose category field equals
// value exactly. Unknown fields match nothing.
func (s *Store) Filter(field domain.CategoryField, value string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]domain.Product, 0)
	for _, p := range s.products {
		if v, ok := p.Category.Field(field); ok && v == value {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterAndNotify filters and repaints the observers with the result.
func (s *Store) FilterAndNotify(field domain.CategoryField, value string) []domain.Product {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	filtered := s.Filter(field, value)
	s.notify(filtered)
	return filtered
}

// Products returns a copy of the current list.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() []domain.Product {
	return append(make([]domain.Product, 0, len(s.products)), s.products...)
}

// persistLocked overwrites the slot with the whole list.
func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.products)
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}

	if err := s.slot.Save(ctx, s.key, data); err != nil {
		log.Errorf("❌ Failed to persist %d products: %v", len(s.products), err)
		return fmt.Errorf("failed to persist products: %w", err)
	}
	return nil
}

// notify must be called with notifyMu held and mu released.
func (s *Store) notify(products []domain.Product) {
	s.mu.Lock()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		o.Repaint(products)
	}
}
