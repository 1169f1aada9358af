package handlers

import (
	"net/http"

	"busbooking/internal/http/middleware"
	"busbooking/internal/repositories"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		Gateway:     gateway,
		Secret:      gwSecret,
		OrderRepo:   repositories.PaymentOrderRepository{},
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

type createOrderRequest struct {
	Amount    int64 `json:"amount" binding:"required"`
	BookingID int64 `json:"booking_id" binding:"required"`
}

// POST /api/payments/order
func CreatePaymentOrder(c *gin.Context) {
	var req createOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if gateway == nil {
		RespondError(c, http.StatusServiceUnavailable, "payment gateway not configured", nil)
		return
	}

	order, err := paymentService(c).CreateOrder(middleware.GetUserID(c), req.BookingID, req.Amount)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

type confirmPaymentRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// POST /api/payments/confirm
func ConfirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	err := paymentService(c).MarkPaid(middleware.GetUserID(c), req.BookingID, req.PaymentID, req.Signature)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Payment successful and booking marked paid."})
}
