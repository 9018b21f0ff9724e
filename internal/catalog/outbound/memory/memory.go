package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/shandysiswandi/fieldguard/internal/catalog/entity"
	"github.com/shandysiswandi/fieldguard/internal/pkg/goerror"
	"github.com/shandysiswandi/fieldguard/internal/pkg/instrument"
)

// Store keeps the cat catalog in memory, keyed by lower-cased name.
type Store struct {
	mu   sync.RWMutex
	cats map[string]entity.Cat
	ins  instrument.Instrumentation
}

// NewStore returns a Store seeded with cats.
func NewStore(ins instrument.Instrumentation, cats ...entity.Cat) *Store {
	s := &Store{cats: make(map[string]entity.Cat, len(cats)), ins: ins}
	for _, c := range cats {
		s.cats[strings.ToLower(c.Name)] = c
	}
	return s
}

// Seed is the catalog loaded by the demo service.
func Seed() []entity.Cat {
	return []entity.Cat{
		{Name: "Mozart", Age: 4, Breed: "persian"},
		{Name: "Gribouille", Age: 2, Breed: "siamese"},
		{Name: "Tigrou", Age: 7, Breed: "bengal"},
		{Name: "Felix", Age: 4, Breed: "maine_coon"},
	}
}

func (s *Store) ListCats(ctx context.Context, f entity.CatFilter) ([]entity.Cat, error) {
	_, span := s.ins.Tracer("catalog.outbound.memory").Start(ctx, "ListCats")
	defer span.End()

	s.mu.RLock()
	cats := lo.Values(s.cats)
	s.mu.RUnlock()

	cats = lo.Filter(cats, func(c entity.Cat, _ int) bool {
		if f.Age > 0 && c.Age != f.Age {
			return false
		}
		return f.Breed == "" || c.Breed == f.Breed
	})
	slices.SortFunc(cats, func(a, b entity.Cat) int {
		return strings.Compare(a.Name, b.Name)
	})

	if f.Limit > 0 && int(f.Limit) < len(cats) {
		cats = cats[:f.Limit]
	}

	return cats, nil
}

func (s *Store) GetCat(ctx context.Context, name string) (*entity.Cat, error) {
	_, span := s.ins.Tracer("catalog.outbound.memory").Start(ctx, "GetCat")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cats[strings.ToLower(name)]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &c, nil
}

func (s *Store) DeleteCat(ctx context.Context, name string) error {
	_, span := s.ins.Tracer("catalog.outbound.memory").Start(ctx, "DeleteCat")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := s.cats[key]; !ok {
		return goerror.ErrNotFound
	}
	delete(s.cats, key)
	return nil
}
