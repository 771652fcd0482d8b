package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"payment-gateway-core/internal/adapter/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentInit_SameOrderIDIsIdempotent fires N concurrent Init calls
// for the same (team, order) pair and asserts every caller gets back the
// very same payment -- the Redis-first, Postgres-fallback idempotency log
// must collapse the race to a single created payment.
func TestConcurrentInit_SameOrderIDIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	const apiSecret = "concurrency-secret"
	app.provisionTeam(t, "concurrent_init_team", apiSecret)

	const workers = 50
	paymentIDs := make([]string, workers)
	statuses := make([]int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(idx int) {
			defer wg.Done()
			fields := map[string]string{
				"TeamSlug": "concurrent_init_team",
				"OrderId":  "race-order-1",
				"Amount":   "25000",
				"Currency": "RUB",
			}
			token := app.signedToken(fields, apiSecret)
			resp := postJSON(t, app.server.URL+"/api/v1/init", dto.InitRequest{
				TeamSlug: "concurrent_init_team",
				OrderID:  "race-order-1",
				Amount:   25000,
				Currency: "RUB",
				Token:    token,
			})
			statuses[idx] = resp.StatusCode
			var data dto.PaymentResponse
			decodeData(t, resp, &data)
			paymentIDs[idx] = data.PaymentID
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.Contains(t, []int{http.StatusCreated, http.StatusOK}, statuses[i])
		assert.NotEmpty(t, paymentIDs[i])
		assert.Equal(t, paymentIDs[0], paymentIDs[i], "every concurrent Init on the same order must resolve to one payment")
	}
}

// TestConcurrentConfirmCancel_OnlyOneWins fires a Confirm and a Cancel at
// the same payment concurrently. The lock manager serializes the two
// operations on the payment's lock key, and the state machine's transition
// table then ensures only the operation that acquires the lock first
// actually lands -- CANCELLED is terminal and CONFIRMED has no edge to
// CANCELLED, so the second must fail.
func TestConcurrentConfirmCancel_OnlyOneWins(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	const apiSecret = "confirm-cancel-secret"
	app.provisionTeam(t, "confirm_cancel_team", apiSecret)

	initFields := map[string]string{
		"TeamSlug": "confirm_cancel_team",
		"OrderId":  "race-order-2",
		"Amount":   "75000",
		"Currency": "RUB",
	}
	initToken := app.signedToken(initFields, apiSecret)
	initResp := postJSON(t, app.server.URL+"/api/v1/init", dto.InitRequest{
		TeamSlug: "confirm_cancel_team",
		OrderID:  "race-order-2",
		Amount:   75000,
		Currency: "RUB",
		Token:    initToken,
	})
	require.Equal(t, http.StatusCreated, initResp.StatusCode)
	var initData dto.PaymentResponse
	decodeData(t, initResp, &initData)
	app.authorize(t, initData.PaymentID)

	var successes int32
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		fields := map[string]string{"TeamSlug": "confirm_cancel_team", "PaymentId": initData.PaymentID}
		token := app.signedToken(fields, apiSecret)
		resp := postJSON(t, app.server.URL+"/api/v1/confirm", dto.PaymentOpRequest{
			TeamSlug:  "confirm_cancel_team",
			PaymentID: initData.PaymentID,
			Token:     token,
		})
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			atomic.AddInt32(&successes, 1)
		}
	}()

	go func() {
		defer wg.Done()
		fields := map[string]string{"TeamSlug": "confirm_cancel_team", "PaymentId": initData.PaymentID, "Reason": "customer changed mind"}
		token := app.signedToken(fields, apiSecret)
		resp := postJSON(t, app.server.URL+"/api/v1/cancel", dto.PaymentOpRequest{
			TeamSlug:  "confirm_cancel_team",
			PaymentID: initData.PaymentID,
			Reason:    "customer changed mind",
			Token:     token,
		})
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			atomic.AddInt32(&successes, 1)
		}
	}()

	wg.Wait()

	assert.Equal(t, int32(1), successes, "exactly one of the two racing terminal operations should win the lock and land")

	stateFields := map[string]string{"TeamSlug": "confirm_cancel_team", "PaymentId": initData.PaymentID}
	stateToken := app.signedToken(stateFields, apiSecret)
	stateResp := postJSON(t, app.server.URL+"/api/v1/getState", dto.PaymentOpRequest{
		TeamSlug:  "confirm_cancel_team",
		PaymentID: initData.PaymentID,
		Token:     stateToken,
	})
	var finalState dto.PaymentResponse
	decodeData(t, stateResp, &finalState)

	assert.Contains(t, []string{"CONFIRMED", "CANCELLED"}, finalState.Status)
}

// TestConcurrentRefund_CannotExceedOriginalAmount fires concurrent partial
// refunds against a confirmed payment whose sum exceeds the original
// amount, and asserts the lock-serialized refunds never push the running
// total past what was actually paid.
func TestConcurrentRefund_CannotExceedOriginalAmount(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	const apiSecret = "refund-secret"
	app.provisionTeam(t, "refund_team", apiSecret)

	initFields := map[string]string{
		"TeamSlug": "refund_team",
		"OrderId":  "race-order-3",
		"Amount":   "10000",
		"Currency": "RUB",
	}
	initToken := app.signedToken(initFields, apiSecret)
	initResp := postJSON(t, app.server.URL+"/api/v1/init", dto.InitRequest{
		TeamSlug: "refund_team",
		OrderID:  "race-order-3",
		Amount:   10000,
		Currency: "RUB",
		Token:    initToken,
	})
	require.Equal(t, http.StatusCreated, initResp.StatusCode)
	var initData dto.PaymentResponse
	decodeData(t, initResp, &initData)
	app.authorize(t, initData.PaymentID)

	confirmFields := map[string]string{"TeamSlug": "refund_team", "PaymentId": initData.PaymentID}
	confirmToken := app.signedToken(confirmFields, apiSecret)
	confirmResp := postJSON(t, app.server.URL+"/api/v1/confirm", dto.PaymentOpRequest{
		TeamSlug:  "refund_team",
		PaymentID: initData.PaymentID,
		Token:     confirmToken,
	})
	if confirmResp.StatusCode != http.StatusOK {
		confirmResp.Body.Close()
		t.Skipf("confirm did not succeed (status %d), skipping refund race", confirmResp.StatusCode)
	}
	var confirmData dto.PaymentResponse
	decodeData(t, confirmResp, &confirmData)
	require.True(t, confirmData.Success)

	const workers = 10
	const perRefund = int64(3000)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			amount := perRefund
			fields := map[string]string{
				"TeamSlug":  "refund_team",
				"PaymentId": initData.PaymentID,
				"Amount":    "3000",
			}
			token := app.signedToken(fields, apiSecret)
			resp := postJSON(t, app.server.URL+"/api/v1/refund", dto.PaymentOpRequest{
				TeamSlug:  "refund_team",
				PaymentID: initData.PaymentID,
				Amount:    &amount,
				Token:     token,
			})
			resp.Body.Close()
		}()
	}
	wg.Wait()

	stateFields := map[string]string{"TeamSlug": "refund_team", "PaymentId": initData.PaymentID}
	stateToken := app.signedToken(stateFields, apiSecret)
	stateResp := postJSON(t, app.server.URL+"/api/v1/getState", dto.PaymentOpRequest{
		TeamSlug:  "refund_team",
		PaymentID: initData.PaymentID,
		Token:     stateToken,
	})
	var finalState dto.PaymentResponse
	decodeData(t, stateResp, &finalState)

	assert.LessOrEqual(t, finalState.RefundedAmount, int64(10000), "refunded amount must never exceed the original payment amount")
}
