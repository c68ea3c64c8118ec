package recommend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/layza-app/layza/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_FirstResultWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "frações", r.URL.Query().Get("topic"))
		assert.Equal(t, "visual", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"r1","title":"Frações em 10 minutos","url":"https://videos.example/fracoes","format":"visual"},
			{"id":"r2","title":"Apostila de frações","url":"https://docs.example/fracoes","format":"reading"}
		]`))
	}))
	defer srv.Close()

	rec, err := NewClient(srv.URL).Recommend(context.Background(), "frações", domain.PrefVisual)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "r1", rec.ID)
	assert.Equal(t, "Frações em 10 minutos", rec.Title)
	assert.Equal(t, domain.PrefVisual, rec.Format)
}

func TestRecommend_EmptyListMeansNothingFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rec, err := NewClient(srv.URL).Recommend(context.Background(), "frações", domain.PrefVisual)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRecommend_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Recommend(context.Background(), "frações", domain.PrefVisual)
	assert.ErrorContains(t, err, "status 502")
}

func TestRecommend_UnknownFormatDropped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"r1","title":"Célula animal","url":"https://x.example/celula","format":"hologram"}]`))
	}))
	defer srv.Close()

	rec, err := NewClient(srv.URL).Recommend(context.Background(), "célula", domain.PrefVisual)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Empty(t, rec.Format)
}

func TestRecommend_DisabledWithoutEndpointOrTopic(t *testing.T) {
	rec, err := NewClient("").Recommend(context.Background(), "frações", domain.PrefVisual)
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = NewClient("http://example.com").Recommend(context.Background(), "", domain.PrefVisual)
	require.NoError(t, err)
	assert.Nil(t, rec)
}
