package directory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/directory"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

func ids(locs []domain.Location) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.ID
	}
	return out
}

func TestMock_HasTenLocations(t *testing.T) {
	all := directory.NewMock().All()
	assert.Len(t, all, 10)
}

func TestStatic_Search(t *testing.T) {
	d := directory.NewMock()
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"PARIS", []string{"paris"}},
		{"nigeria", []string{"lagos", "abuja"}}, // country
		{"western cape", []string{"cape-town"}}, // subtitle
		{"  lon ", []string{"london"}},          // trimmed
		{"united", []string{"london", "dubai", "new-york"}},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got, err := d.Search(ctx, tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestStatic_Search_Errors(t *testing.T) {
	d := directory.NewMock()

	_, err := d.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, directory.ErrInvalidQuery)

	_, err = d.Search(context.Background(), "atlantis")
	assert.ErrorIs(t, err, directory.ErrNoResults)
}

func TestStatic_AllReturnsCopy(t *testing.T) {
	d := directory.NewMock()

	all := d.All()
	all[0].Name = "changed"
	*all[0].Subtitle = "changed"

	again := d.All()
	assert.Equal(t, "Lagos", again[0].Name)
	assert.Equal(t, "Lagos State", *again[0].Subtitle)
}

func TestStatic_Lookup(t *testing.T) {
	d := directory.NewMock()

	loc, err := d.Lookup(context.Background(), "accra")
	require.NoError(t, err)
	assert.Equal(t, "Ghana", loc.Country)

	_, err = d.Lookup(context.Background(), "atlantis")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRateLimited_FailsFastWhenExhausted(t *testing.T) {
	d := directory.NewRateLimited(directory.NewMock(), directory.RateLimitConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         2,
	})
	ctx := context.Background()

	for range 2 {
		_, err := d.Search(ctx, "paris")
		require.NoError(t, err)
	}
	_, err := d.Search(ctx, "paris")
	assert.ErrorIs(t, err, directory.ErrRateLimit)

	// All and Lookup are not metered.
	assert.Len(t, d.All(), 10)
	_, err = d.Lookup(ctx, "paris")
	assert.NoError(t, err)
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want directory.Error
	}{
		{"already classified", directory.ErrRateLimit, directory.ErrRateLimit},
		{"wrapped", fmt.Errorf("lookup: %w", directory.ErrNoResults), directory.ErrNoResults},
		{"deadline", context.DeadlineExceeded, directory.ErrNetwork},
		{"net error", timeoutErr{}, directory.ErrNetwork},
		{"anything else", errors.New("boom"), directory.ErrServer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, directory.Classify(tc.err))
		})
	}
}

func TestError_MessagesAndCodes(t *testing.T) {
	all := []directory.Error{
		directory.ErrNetwork, directory.ErrInvalidResponse, directory.ErrNoResults,
		directory.ErrInvalidQuery, directory.ErrRateLimit, directory.ErrServer,
	}
	codes := map[string]bool{}
	for _, e := range all {
		assert.NotEmpty(t, e.Error())
		codes[e.Code()] = true
	}
	assert.Len(t, codes, len(all), "codes must be distinct")
}
