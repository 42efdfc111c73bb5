package skyetel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// newTestClient wires a client to a mock server with a rate limit high
// enough to never block the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-sid", "test-secret", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithRateLimit(10000, time.Second),
	)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		sid     string
		secret  string
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid credentials",
			sid:    "sid",
			secret: "secret",
		},
		{
			name:    "missing SID",
			sid:     "",
			secret:  "secret",
			wantErr: true,
			errMsg:  "SID is required",
		},
		{
			name:    "missing secret",
			sid:     "sid",
			secret:  "",
			wantErr: true,
			errMsg:  "secret is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.sid, tt.secret, zerolog.Nop())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultBaseURL, client.baseURL)
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("sid", "secret", zerolog.Nop(), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("sid", "secret", zerolog.Nop(), WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})

	t.Run("with base url", func(t *testing.T) {
		client, err := NewClient("sid", "secret", zerolog.Nop(), WithBaseURL("http://localhost:9999/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999", client.baseURL)
	})
}

func TestDoSetsAuthHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-sid", r.Header.Get("X-AUTH-SID"))
		assert.Equal(t, "test-secret", r.Header.Get("X-AUTH-SECRET"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{}`))
	})

	_, err := client.get(context.Background(), client.endpoint(pathBillingBalance))
	require.NoError(t, err)
}

func TestDoUnsupportedMethod(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should never reach the server")
	})

	_, err := client.do(context.Background(), http.MethodDelete, client.endpoint(pathTenants), nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestDoAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"ERROR": "Invalid endpoint_group_id"}`))
	})

	_, err := client.CreateEndpoint(context.Background(), EndpointCreate{
		IP:              "10.0.0.1",
		Port:            5060,
		Transport:       "UDP",
		Priority:        1,
		Description:     "pbx",
		EndpointGroupID: 42,
	})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Invalid endpoint_group_id", apiErr.Message)
}

func TestDoAPIErrorUnparsableBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.GetBillingBalance(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestDoUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient("sid", "secret", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithRateLimit(1000, time.Second),
	)
	require.NoError(t, err)
	server.Close()

	_, err = client.GetBillingBalance(context.Background())
	require.Error(t, err)

	var unavailable *UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestRateLimiterDelaysOverQuota(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"BALANCE": "1.00"}`))
	}))
	defer server.Close()

	// Quota of 2 per 200ms keeps the test fast: the first two calls pass
	// immediately, the third must wait for the window to admit it.
	client, err := NewClient("sid", "secret", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithRateLimit(2, 200*time.Millisecond),
	)
	require.NoError(t, err)

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 2; i++ {
		_, err := client.GetBillingBalance(ctx)
		require.NoError(t, err)
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond, "calls within quota should not block")

	_, err = client.GetBillingBalance(ctx)
	require.NoError(t, err, "over-quota call must be delayed, not rejected")
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond, "over-quota call should have waited out the window")
}

func TestRateLimiterEnforcesWindowCeiling(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"BALANCE": "1.00"}`))
	}))
	defer server.Close()

	client, err := NewClient("sid", "secret", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithRateLimit(5, time.Second),
	)
	require.NoError(t, err)

	// Hammer the endpoint for most of one window. However fast the loop
	// spins, the aggregate admitted inside the window must not exceed the
	// quota; a burst-plus-refill shape would let roughly double through.
	ctx, cancel := context.WithTimeout(context.Background(), 950*time.Millisecond)
	defer cancel()
	for {
		if _, err := client.GetBillingBalance(ctx); err != nil {
			break
		}
	}

	admitted := calls.Load()
	assert.LessOrEqual(t, admitted, int64(5), "window admitted more calls than the quota")
	assert.Greater(t, admitted, int64(0))
}

func TestWithSharedRateLimiter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"BALANCE": "1.00"}`))
	}))
	defer server.Close()

	// Any Wait-shaped limiter plugs in, including a token bucket shared
	// across clients.
	shared := rate.NewLimiter(rate.Every(time.Millisecond), 10)
	ctx := context.Background()
	for _, name := range []string{"first", "second"} {
		client, err := NewClient(name, "secret", zerolog.Nop(),
			WithBaseURL(server.URL),
			WithRateLimiter(shared),
		)
		require.NoError(t, err)

		_, err = client.GetBillingBalance(ctx)
		require.NoError(t, err)
	}
}

func TestRateLimiterRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"BALANCE": "1.00"}`))
	}))
	defer server.Close()

	client, err := NewClient("sid", "secret", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithRateLimit(1, time.Hour),
	)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.GetBillingBalance(ctx)
	require.NoError(t, err)

	cancelled, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = client.GetBillingBalance(cancelled)
	require.Error(t, err)
}

func TestGetAudioTranscriptionText(t *testing.T) {
	var downloadURL string

	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The second hop goes to the storage service without credentials.
		assert.Empty(t, r.Header.Get("X-AUTH-SID"))
		w.Write([]byte("hello from the transcript"))
	}))
	defer storage.Close()
	downloadURL = storage.URL + "/t/123.txt"

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio_transcriptions/123/download", r.URL.Path)
		w.Write([]byte(`{"download_url": "` + downloadURL + `"}`))
	})

	text, err := client.GetAudioTranscriptionText(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, "hello from the transcript", text)
}

func TestGetPhoneNumbersQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/phonenumbers", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "25", q.Get("page[limit]"))
		assert.Equal(t, "50", q.Get("page[offset]"))
		assert.Equal(t, "austin", q.Get("filter[query]"))
		assert.Equal(t, "-number,id", q.Get("sort"))
		w.Write([]byte(`[{"id": 1, "number": "15125550100"}]`))
	})

	numbers, err := client.GetPhoneNumbers(context.Background(), ListOptions{
		Limit:  25,
		Offset: 50,
		Query:  "austin",
		Sort:   []string{"-number", "id"},
	})
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, Int(15125550100), numbers[0].Number)
}

func TestGetOrganizationStatement(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats/org/statement", r.URL.Path)
		assert.Equal(t, "2021", r.URL.Query().Get("year"))
		assert.Equal(t, "3", r.URL.Query().Get("month"))
		w.Write([]byte(`{
			"statement": {
				"total_cost": "145.20",
				"inbound_calls_count": "1200",
				"phone_numbers": {"local": "14", "tollfree": "2"}
			},
			"taxes": [{"tax_auth": "FED", "tax_amount": "1.25", "is_exempt": false}],
			"transactions": [{"amount": "-20.00", "transaction_date": "2021-03-15T10:30:00+00:00", "transaction_type": "credit"}]
		}`))
	})

	statement, err := client.GetOrganizationStatement(context.Background(), 2021, 3)
	require.NoError(t, err)

	require.NotNil(t, statement.Statement)
	assert.Equal(t, Float(145.20), statement.Statement.TotalCost)
	assert.Equal(t, Int(1200), statement.Statement.InboundCallsCount)
	require.NotNil(t, statement.Statement.PhoneNumbers)
	assert.Equal(t, Int(14), statement.Statement.PhoneNumbers.Local)

	require.Len(t, statement.Taxes, 1)
	assert.Equal(t, "FED", statement.Taxes[0].TaxAuth)

	require.Len(t, statement.Transactions, 1)
	assert.Equal(t, Float(-20), statement.Transactions[0].Amount)
	expected := time.Date(2021, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.True(t, statement.Transactions[0].TransactionDate.Equal(expected))
}

func TestSearchAvailablePhoneNumbersInvalidFilterNeverDials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid filter must be rejected before any network call")
	})

	_, err := client.SearchAvailablePhoneNumbers(context.Background(), &NumberSearchFilter{
		City:       "Austin",
		States:     []string{"TX"},
		PostalCode: 78701,
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "mutually exclusive")
}

func TestCreateEndpointFormEncoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "10.0.0.1", r.PostForm.Get("ip"))
		assert.Equal(t, "5060", r.PostForm.Get("port"))
		assert.Equal(t, "UDP", r.PostForm.Get("transport"))
		assert.Empty(t, r.PostForm.Get("endpoint_id"), "optional endpoint_id must not be sent when unset")
		w.Write([]byte(`{"id": 7, "ip": "10.0.0.1", "port": 5060, "transport": "UDP"}`))
	})

	created, err := client.CreateEndpoint(context.Background(), EndpointCreate{
		IP:              "10.0.0.1",
		Port:            5060,
		Transport:       "UDP",
		Priority:        1,
		Description:     "pbx",
		EndpointGroupID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestUpdatePhoneNumberSparsePatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/phonenumbers/99", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "false", r.PostForm.Get("cnam_enabled"))
		assert.Equal(t, "pbx line", r.PostForm.Get("note"))
		_, touched := r.PostForm["e911_enabled"]
		assert.False(t, touched, "unset fields must not be serialized")
		w.Write([]byte(`{"id": 99, "number": "15125550100", "cnam_enabled": false}`))
	})

	updated, err := client.UpdatePhoneNumber(context.Background(), 99, PhoneNumberUpdate{
		CNAMEnabled: Ptr(false),
		Note:        Ptr("pbx line"),
	})
	require.NoError(t, err)
	assert.False(t, updated.CNAMEnabled)
}
