package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	rates "github.com/checkmateLL/privat-rates"
)

type (
	archiveHandler struct{}
	noDataHandler  struct{}
	brokenHandler  struct{}
	statusHandler  struct{ status int }
)

func (h archiveHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	date := request.URL.Query().Get("date")
	payload := fmt.Sprintf(`{"date":%q,"bank":"PB","baseCurrency":980,"exchangeRate":[`+
		`{"baseCurrency":"UAH","currency":"EUR","saleRateNB":30.9,"purchaseRateNB":30.2,"saleRate":31.5,"purchaseRate":30.8},`+
		`{"baseCurrency":"UAH","currency":"USD","saleRateNB":27.2,"purchaseRateNB":27.0,"saleRate":27.5},`+
		`{"baseCurrency":"UAH","currency":"GBP","saleRate":35.1,"purchaseRate":34.2}]}`, date)

	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(payload))
}

// noiseCurrency draws random ISO codes until one falls outside the
// supported pair.
func noiseCurrency() string {
	for {
		if c := faker.Currency(); c != "EUR" && c != "USD" {
			return c
		}
	}
}

func (h noDataHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	entries := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		entries = append(entries, fmt.Sprintf(`{"baseCurrency":"UAH","currency":%q,"saleRate":35.1,"purchaseRate":34.2}`, noiseCurrency()))
	}

	payload := fmt.Sprintf(`{"date":%q,"bank":"PB","exchangeRate":[%s]}`,
		request.URL.Query().Get("date"), strings.Join(entries, ","))

	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(payload))
}

func (h brokenHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(`{"exchangeRate": [`))
}

func (h statusHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(h.status)
}

func TestPrivatBankFetcher_Fetch(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(archiveHandler{})
	defer server.Close()

	ctx := context.Background()

	t.Run("Retrieves data and keeps only EUR and USD", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := PrivatBankFetcher{URL: server.URL}

		result, err := fetcher.Fetch(ctx, "01.12.2020")

		asserts.Nil(err)
		asserts.Len(result, 1)

		day, ok := result["01.12.2020"]
		asserts.True(ok)
		asserts.Len(day, 2)
		asserts.Contains(day, rates.EUR)
		asserts.Contains(day, rates.USD)

		asserts.True(decimal.RequireFromString("31.5").Equal(*day[rates.EUR].Sale))
		asserts.True(decimal.RequireFromString("30.8").Equal(*day[rates.EUR].Purchase))
	})

	t.Run("Preserves absent purchase rate as nil", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := PrivatBankFetcher{URL: server.URL}

		result, err := fetcher.Fetch(ctx, "01.12.2020")

		asserts.Nil(err)
		asserts.True(decimal.RequireFromString("27.5").Equal(*result["01.12.2020"][rates.USD].Sale))
		asserts.Nil(result["01.12.2020"][rates.USD].Purchase)
	})

	t.Run("Sends the provider query parameters", func(t *testing.T) {
		asserts := require.New(t)
		var gotDate string
		var gotJSON bool

		paramServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			gotDate = request.URL.Query().Get("date")
			gotJSON = request.URL.Query().Has("json")
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{"exchangeRate":[]}`))
		}))
		defer paramServer.Close()

		fetcher := PrivatBankFetcher{URL: paramServer.URL}
		_, err := fetcher.Fetch(ctx, "15.06.2021")

		asserts.Nil(err)
		asserts.Equal("15.06.2021", gotDate)
		asserts.True(gotJSON)
	})
}

func TestPrivatBankFetcher_Fetch_NoData(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	server := httptest.NewServer(noDataHandler{})
	defer server.Close()

	fetcher := PrivatBankFetcher{URL: server.URL}
	result, err := fetcher.Fetch(context.Background(), "01.12.2020")

	asserts.Nil(err)
	asserts.NotNil(result)
	asserts.Empty(result)
}

func TestPrivatBankFetcher_Fetch_StatusCodes(t *testing.T) {
	t.Parallel()

	values := []struct {
		name     string
		status   int
		expected error
	}{
		{"ServerError", http.StatusInternalServerError, ErrServer},
		{"ClientError", http.StatusNotFound, ErrClient},
		{"UnknownError", http.StatusNotModified, ErrUnknown},
	}

	for _, value := range values {
		value := value
		t.Run(value.name, func(t *testing.T) {
			asserts := require.New(t)
			server := httptest.NewServer(statusHandler{status: value.status})
			defer server.Close()

			fetcher := PrivatBankFetcher{URL: server.URL}
			result, err := fetcher.Fetch(context.Background(), "01.12.2020")

			asserts.Nil(result)
			asserts.True(errors.Is(err, value.expected))
		})
	}
}

func TestPrivatBankFetcher_Fetch_MalformedBody(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	server := httptest.NewServer(brokenHandler{})
	defer server.Close()

	fetcher := PrivatBankFetcher{URL: server.URL}
	result, err := fetcher.Fetch(context.Background(), "01.12.2020")

	asserts.Nil(result)
	asserts.NotNil(err)
	asserts.Contains(err.Error(), "unmarshal response")
}
