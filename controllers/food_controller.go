package controllers

import (
	"net/http"

	"github.com/polmorales30/nexo.clinic-sub000/services"

	"github.com/gin-gonic/gin"
)

// GET /food/search?q=pollo
func SearchFoods(c *gin.Context) {
	out := services.NewFoodCatalog().Search(c.Query("q"))
	c.JSON(http.StatusOK, out)
}

// GET /food/:id
func GetFood(c *gin.Context) {
	item, err := services.NewFoodCatalog().Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}
