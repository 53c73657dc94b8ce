package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/randkit/randkit-go/internal/crypto"
	"github.com/randkit/randkit-go/internal/generator"
	"github.com/randkit/randkit-go/internal/model"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultStringLength   = 16
	DefaultPasswordLength = 16
	dateLayout            = "2006-01-02"

	// MaxConcurrentHashes bounds the argon2id computations in flight. Each one holds the
	// hasher's Memory for its whole run.
	MaxConcurrentHashes = 4
)

// ErrInvalidOption reports an option value the generators do not know, such as an unknown carrier.
var ErrInvalidOption = errors.New("invalid option")

// DefaultStartDate is the lower date bound used when none is given.
var DefaultStartDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// GeneratorService maps API requests onto the generator library.
type GeneratorService struct {
	gen       *generator.Generator
	hasher    *crypto.Hasher
	hashSlots *semaphore.Weighted
	now       func() time.Time
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *generator.Generator, hasher *crypto.Hasher) *GeneratorService {
	return &GeneratorService{
		gen:       gen,
		hasher:    hasher,
		hashSlots: semaphore.NewWeighted(MaxConcurrentHashes),
		now:       time.Now,
	}
}

// Number produces an integer in [min, max]. Missing or non-integer bounds are an invalid range.
func (s *GeneratorService) Number(req model.NumberRequest) (model.NumberResponse, error) {
	min, err := parseBound(req.Min)
	if err != nil {
		return model.NumberResponse{}, err
	}
	max, err := parseBound(req.Max)
	if err != nil {
		return model.NumberResponse{}, err
	}

	v, err := s.gen.Int(min, max)
	if err != nil {
		return model.NumberResponse{}, err
	}
	return model.NumberResponse{Value: v}, nil
}

// parseBound accepts a JSON number or a numeric string.
func parseBound(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("%w: both bounds are required", generator.ErrInvalidRange)
	}

	text := string(raw)
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		text = strings.TrimSpace(quoted)
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", generator.ErrInvalidRange, raw)
	}
	return n, nil
}

// String produces a random string.
func (s *GeneratorService) String(req model.StringRequest) (model.ValueResponse, error) {
	spec := generator.CharsetSpec{
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Numbers, true),
		Special:   boolOrDefault(req.Special, false),
	}

	v, err := s.gen.String(intOrDefault(req.Length, DefaultStringLength), spec)
	if err != nil {
		return model.ValueResponse{}, err
	}
	return model.ValueResponse{Value: v, Length: len(v)}, nil
}

// Password produces a password with its strength and, when requested, its argon2id hash.
func (s *GeneratorService) Password(ctx context.Context, req model.PasswordRequest) (model.PasswordResponse, error) {
	spec := generator.CharsetSpec{
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Numbers, true),
		Special:   boolOrDefault(req.Special, true),
	}

	password, err := s.gen.Password(intOrDefault(req.Length, DefaultPasswordLength), spec)
	if err != nil {
		return model.PasswordResponse{}, err
	}

	resp := model.PasswordResponse{
		Password: password,
		Length:   len(password),
		Strength: strengthResponse(generator.PasswordStrength(password)),
	}

	if req.Hash {
		err := s.withHashSlot(ctx, func() error {
			hash, err := s.hasher.Hash(password)
			resp.Hash = hash
			return err
		})
		if err != nil {
			return model.PasswordResponse{}, err
		}
	}

	return resp, nil
}

// Verify checks a password against a hash handed out by Password.
func (s *GeneratorService) Verify(ctx context.Context, req model.VerifyRequest) (model.VerifyResponse, error) {
	var match bool
	err := s.withHashSlot(ctx, func() error {
		var err error
		match, err = s.hasher.Verify(req.Password, req.Hash)
		return err
	})
	if err != nil {
		return model.VerifyResponse{}, err
	}
	return model.VerifyResponse{Match: match}, nil
}

// withHashSlot runs fn once one of the MaxConcurrentHashes slots is free, or gives up when ctx is done.
func (s *GeneratorService) withHashSlot(ctx context.Context, fn func() error) error {
	if err := s.hashSlots.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for hash slot: %w", err)
	}
	defer s.hashSlots.Release(1)
	return fn()
}

// Strength scores an arbitrary password.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	return strengthResponse(generator.PasswordStrength(req.Password))
}

func strengthResponse(st generator.Strength) model.StrengthResponse {
	return model.StrengthResponse{
		Score:   st.Score,
		Label:   string(st.Label),
		Display: st.Label.Display(),
	}
}

// UUID produces a version 4 UUID.
func (s *GeneratorService) UUID() model.ValueResponse {
	return model.ValueResponse{Value: s.gen.UUIDv4()}
}

// Phone produces a mobile number for the requested carriers.
func (s *GeneratorService) Phone(req model.PhoneRequest) (model.ValueResponse, error) {
	carriers := make([]generator.Carrier, 0, len(req.Carriers))
	for _, name := range req.Carriers {
		c, err := generator.ParseCarrier(name)
		if err != nil {
			return model.ValueResponse{}, fmt.Errorf("%w: %v", ErrInvalidOption, err)
		}
		carriers = append(carriers, c)
	}
	return model.ValueResponse{Value: s.gen.Phone(carriers...)}, nil
}

// Username produces a username. Letters and digits default to on, underscore to off.
func (s *GeneratorService) Username(req model.UsernameRequest) (model.ValueResponse, error) {
	spec := generator.UsernameSpec{
		Letters:    boolOrDefault(req.Letters, true),
		Digits:     boolOrDefault(req.Numbers, true),
		Underscore: boolOrDefault(req.Underscore, false),
	}

	v, err := s.gen.Username(req.Length, spec)
	if err != nil {
		return model.ValueResponse{}, err
	}
	return model.ValueResponse{Value: v, Length: len(v)}, nil
}

// Email produces an email address.
func (s *GeneratorService) Email(req model.EmailRequest) (model.ValueResponse, error) {
	v, err := s.gen.Email(req.NameLength, req.Domain)
	if err != nil {
		return model.ValueResponse{}, err
	}
	return model.ValueResponse{Value: v}, nil
}

// IP produces an address for the requested version and scope.
func (s *GeneratorService) IP(req model.IPRequest) (model.IPResponse, error) {
	spec, err := generator.ParseIPSpec(req.Version, req.Scope)
	if err != nil {
		return model.IPResponse{}, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return model.IPResponse{
		Value:   s.gen.IP(spec),
		Version: string(spec.Version),
		Scope:   string(spec.Scope),
	}, nil
}

// Date produces a date between the requested bounds.
func (s *GeneratorService) Date(req model.DateRequest) model.ValueResponse {
	start := parseDateOr(req.Start, DefaultStartDate)
	end := parseDateOr(req.End, s.now())
	return model.ValueResponse{Value: s.gen.Date(start, end, generator.DateFormat(req.Format))}
}

func parseDateOr(value string, fallback time.Time) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return t
}

// Time produces a time of day, on the 24-hour clock unless told otherwise.
func (s *GeneratorService) Time(req model.TimeRequest) model.ValueResponse {
	return model.ValueResponse{Value: s.gen.Time(generator.TimeSpec{
		Hour24:  boolOrDefault(req.Hour24, true),
		Seconds: req.Seconds,
	})}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
