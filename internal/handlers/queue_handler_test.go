package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/handlers"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/testutil"
	ucqueue "github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
)

func newQueueRouter(repo *testutil.FakeRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handlers.NewQueueHandler(
		ucqueue.NewEnterQueue(repo, nil),
		ucqueue.NewGetQueue(repo),
		ucqueue.NewUpdateStatus(repo, nil),
		ucqueue.NewGetPosition(repo),
		ucqueue.NewGetActiveByPhone(repo),
		nil,
	)

	r := gin.New()
	r.POST("/api/queue/enter", h.Enter)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEnterAdmitsShortPhone(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})
	preco := 40.0
	repo.AddService(models.Service{ID: 1, Nome: "Corte", Preco: &preco})

	r := newQueueRouter(repo)

	w := postJSON(t, r, "/api/queue/enter", map[string]any{
		"nome":        "Ana",
		"telefone":    "111",
		"barbeiro_id": 1,
		"serviceIds":  []uint{1},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var first dto.QueueEntryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, 1, first.Posicao)
	assert.Equal(t, "AGUARDANDO", first.Status)
	require.Len(t, first.Servicos, 1)
	assert.Equal(t, uint(1), first.Servicos[0].ID)

	w = postJSON(t, r, "/api/queue/enter", map[string]any{
		"nome":        "Bea",
		"telefone":    "222",
		"barbeiro_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var second dto.QueueEntryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, 2, second.Posicao)
}

func TestEnterRejectsPhoneWithoutDigits(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})

	r := newQueueRouter(repo)

	w := postJSON(t, r, "/api/queue/enter", map[string]any{
		"nome":        "Ana",
		"telefone":    "sem numero",
		"barbeiro_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_phone")
}

func TestEnterUnknownBarberReturns404(t *testing.T) {
	repo := testutil.NewFakeRepository()
	r := newQueueRouter(repo)

	w := postJSON(t, r, "/api/queue/enter", map[string]any{
		"nome":        "Ana",
		"telefone":    "111",
		"barbeiro_id": 99,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "barber_not_found")
}
