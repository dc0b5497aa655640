// Package memory keeps every gateway in process memory. It honours the
// same unique, reference and restrict rules as the postgres schema and is
// used for STORE_DRIVER=memory and as the test fixture.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type Store struct {
	mu sync.RWMutex

	clients      map[uint]models.Client
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	products     map[uint]models.Product
	auditLogs    []models.AuditLog

	seq map[string]uint
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		clients:      map[uint]models.Client{},
		services:     map[uint]models.Service{},
		appointments: map[uint]models.Appointment{},
		products:     map[uint]models.Product{},
		seq:          map[string]uint{},
		now:          time.Now,
	}
}

func (s *Store) Clients() *ClientRepository           { return &ClientRepository{s: s} }
func (s *Store) Services() *ServiceRepository         { return &ServiceRepository{s: s} }
func (s *Store) Appointments() *AppointmentRepository { return &AppointmentRepository{s: s} }
func (s *Store) Products() *ProductRepository         { return &ProductRepository{s: s} }
func (s *Store) AuditLogs() *AuditRepository          { return &AuditRepository{s: s} }

// next must be called with mu held.
func (s *Store) next(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
