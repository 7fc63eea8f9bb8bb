package rundailybilling

import (
	service "billremind/internal/core/services/run_daily_billing"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	result service.Result
	err    error
	runs   int
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.runs++
	if s.err != nil {
		return service.Result{}, s.err
	}
	return s.result, nil
}

func TestRunDailyBillingHandler(t *testing.T) {
	cases := []struct {
		id              string
		result          service.Result
		err             error
		expectedStatus  int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			id:              "clean run",
			result:          service.Result{RolledCount: 3, NotifiedCount: 5},
			expectedStatus:  http.StatusOK,
			expectedSuccess: true,
			expectedMessage: "rolled 3, notified 5, skipped 0, failed 0",
		},
		{
			id:              "partial failures still report 200",
			result:          service.Result{RolledCount: 2, NotifiedCount: 1, SkippedCount: 1, FailedCount: 2},
			expectedStatus:  http.StatusOK,
			expectedSuccess: true,
			expectedMessage: "rolled 2, notified 1, skipped 1, failed 2",
		},
		{
			id:              "lock held elsewhere",
			result:          service.Result{Skipped: true},
			expectedStatus:  http.StatusOK,
			expectedSuccess: true,
			expectedMessage: "skipped: another instance holds the daily billing lock",
		},
		{
			id:              "store failure reports 500",
			err:             errors.New("store unavailable"),
			expectedStatus:  http.StatusInternalServerError,
			expectedSuccess: false,
			expectedMessage: "daily billing run failed",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/api/v1/billing-reminders/run", nil)
			require.Nil(t, err)

			stub := &stubService{result: testcase.result, err: testcase.err}
			rr := httptest.NewRecorder()
			handler := New(stub)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, 1, stub.runs)

			var body Result
			require.Nil(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, testcase.expectedSuccess, body.Success)
			assert.Equal(t, testcase.expectedMessage, body.Message)
		})
	}
}
