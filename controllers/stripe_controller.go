package controllers

import (
	"net/http"

	"github.com/polmorales30/nexo.clinic-sub000/services"

	"github.com/gin-gonic/gin"
)

// POST /stripe/payment-intent  { "amount": 4500, "currency": "eur" }
func CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Amount   int64  `json:"amount" binding:"required"`
		Currency string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := services.NewStripeService().CreatePaymentIntent(req.Amount, req.Currency)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /stripe/subscription  { "customer_id": "cus_…", "price_id": "price_…" }
func CreateSubscription(c *gin.Context) {
	var req struct {
		CustomerID string `json:"customer_id" binding:"required"`
		PriceID    string `json:"price_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := services.NewStripeService().CreateSubscription(req.CustomerID, req.PriceID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
