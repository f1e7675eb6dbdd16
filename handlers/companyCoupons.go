package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	couponRepo "movebook/database/repository/coupon"
	"movebook/models"
	"movebook/utils"
)

// ListCouponsHandler returns the company's coupons, newest first.
func (h *CompanyHandler) ListCouponsHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	coupons, err := h.CouponRepo.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

// CreateCouponHandler validates and stores a new promo code. Codes are
// normalized upper-case before storage so validation can match
// case-insensitively.
func (h *CompanyHandler) CreateCouponHandler(c *gin.Context) {
	companyID := c.GetString("companyID")

	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	coupon.CompanyID = companyID
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	coupon.TimesUsed = 0
	coupon.Active = true

	if coupon.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code required"})
		return
	}
	if coupon.DiscountType == "" {
		coupon.DiscountType = models.DiscountPercent
	}
	if coupon.DiscountType != models.DiscountPercent && coupon.DiscountType != models.DiscountFlat {
		c.JSON(http.StatusBadRequest, gin.H{"error": "discountType must be percent or flat"})
		return
	}
	if coupon.DiscountValue < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "discountValue cannot be negative"})
		return
	}

	err := h.CouponRepo.Create(c.Request.Context(), coupon)
	if errors.Is(err, couponRepo.ErrDuplicateCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code already exists"})
		return
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCouponHandler removes a coupon by id.
func (h *CompanyHandler) DeleteCouponHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	if err := h.CouponRepo.Delete(c.Request.Context(), companyID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
