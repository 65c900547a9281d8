package event

import (
	"time"
)

type Service struct {
	repo      EventRepo
	validator *Validator
	pub       EventPublisher
	cache     Cache
	clock     Clock

	ttlDetails time.Duration

	pageDefault int
	pageMax     int
}

// New wires the orchestrator. pub and cache may be nil.
func New(
	repo EventRepo,
	clock Clock,
	pub EventPublisher,
	cache Cache,
	ttlDetails time.Duration,
) *Service {
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if pub == nil {
		pub = NoopPublisher{}
	}

	return &Service{
		repo:       repo,
		validator:  NewValidator(),
		pub:        pub,
		cache:      cache,
		clock:      clock,
		ttlDetails: ttlDetails,

		pageDefault: DefaultPageSize,
		pageMax:     MaxPageSize,
	}
}

// WithPaging overrides the default and maximum page size. Non-positive
// values keep the current setting.
func (s *Service) WithPaging(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.pageDefault = defaultSize
	}
	if maxSize > 0 {
		s.pageMax = maxSize
	}
	return s
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
