package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // Path parameter conversion
	"time"     // Schedule parsing

	"genesis_city/internal/ledger" // Transactional core
	"genesis_city/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// statusFor maps a classified ledger failure onto an HTTP status
func statusFor(err error) int {
	switch ledger.KindOf(err) {
	case ledger.KindValidation, ledger.KindPrecondition:
		return http.StatusBadRequest // Business-rule rejection
	case ledger.KindNotFound:
		return http.StatusNotFound // Referenced key does not exist
	default:
		return http.StatusInternalServerError // Store-level failure
	}
}

// respondError renders a classified ledger failure
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"error": err.Error(),                // Human-readable rule description
		"kind":  string(ledger.KindOf(err)), // Failure classification
	})
}

// Report caches each write path invalidates. A business feeds the summary
// counts only; a sale moves land between wallets, reshaping both the sales
// aggregate and the influence ranking; a cascade touches all three. Keyed
// reports age out through the TTL instead.
var (
	businessInvalidations = []string{"report:summary"}
	saleInvalidations     = []string{"report:landsales", "report:influence"}
	cascadeInvalidations  = []string{"report:summary", "report:influence", "report:landsales"}
)

// invalidateReports drops the given report caches, errors are non-fatal
func invalidateReports(ctx context.Context, rdb *redis.Client, keys []string) {
	for _, key := range keys {
		_ = utils.DeleteCache(ctx, rdb, key)
	}
}

// RegisterBusinessRequest represents a business registration request
type RegisterBusinessRequest struct {
	Name        string `json:"name" binding:"required"`         // Business name
	Type        string `json:"type" binding:"required"`         // Business type
	OwnerWallet string `json:"owner_wallet" binding:"required"` // Owner wallet address
	ParcelID    *uint  `json:"parcel_id"`                       // Chosen site parcel, optional
}

// RegisterBusinessHandler registers a business on land the owner holds
func RegisterBusinessHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterBusinessRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Run the transactional operation
		session := ledger.NewSession(db)
		reg, err := session.RegisterBusiness(req.Name, req.Type, req.OwnerWallet, req.ParcelID)
		if err != nil {
			respondError(c, err) // Rolled back, surface the classified failure
			return
		}
		// Invalidate the report caches the new business affects
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			invalidateReports(context.Background(), rdb, businessInvalidations) // Entity counts changed
		}
		// Return the committed registration with a display-ready date
		c.JSON(http.StatusCreated, gin.H{
			"business":         reg,                                    // Echoed registration
			"date_established": ledger.FormatDate(reg.DateEstablished), // Normalized date
		})
	}
}

// RecordSaleRequest represents an asset sale request
type RecordSaleRequest struct {
	AssetID      uint    `json:"asset_id" binding:"required"`      // Asset changing hands
	SellerWallet string  `json:"seller_wallet" binding:"required"` // Seller wallet address
	BuyerWallet  string  `json:"buyer_wallet" binding:"required"`  // Buyer wallet address
	Price        float64 `json:"price" binding:"required,gt=0"`    // Sale price
}

// RecordSaleHandler records a sale and transfers asset ownership atomically
func RecordSaleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecordSaleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Run the transactional operation
		session := ledger.NewSession(db)
		sale, err := session.RecordSale(req.AssetID, req.SellerWallet, req.BuyerWallet, req.Price)
		if err != nil {
			respondError(c, err) // Rolled back, ownership unchanged
			return
		}
		// Invalidate caches that now show a stale owner
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			ctx := context.Background()                                          // Context for Redis operations
			invalidateReports(ctx, rdb, saleInvalidations)                       // Sales aggregate and influence changed
			utils.DeletePages(ctx, rdb, "browse:assets", ledger.DefaultPageSize) // Ownership column changed
		}
		// Return the committed sale with display-ready fields
		c.JSON(http.StatusCreated, gin.H{
			"transaction": sale,                              // Recorded sale
			"price":       ledger.FormatPrice(sale.Price),    // Normalized price
			"timestamp":   ledger.FormatTime(sale.Timestamp), // Normalized timestamp
		})
	}
}

// RescheduleEventRequest represents an event reschedule request
type RescheduleEventRequest struct {
	NewStart time.Time `json:"new_start" binding:"required"` // New start timestamp, RFC 3339
	NewEnd   time.Time `json:"new_end" binding:"required"`   // New end timestamp, RFC 3339
}

// RescheduleEventHandler moves an event to a new time window
func RescheduleEventHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the event id from the path
		eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			// If the id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
			return
		}
		var req RescheduleEventRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Run the transactional operation
		session := ledger.NewSession(db)
		if err := session.RescheduleEvent(uint(eventID), req.NewStart, req.NewEnd); err != nil {
			respondError(c, err) // Timestamps untouched on any failure
			return
		}
		// Return the new window with display-ready timestamps
		c.JSON(http.StatusOK, gin.H{
			"message":   "Event rescheduled",
			"event_id":  eventID,                         // Rescheduled event
			"new_start": ledger.FormatTime(req.NewStart), // Normalized start
			"new_end":   ledger.FormatTime(req.NewEnd),   // Normalized end
		})
	}
}

// DeleteUserHandler removes a user with all cascading effects. The route sits
// behind the admin gate; issuing the request is the explicit confirmation,
// the operation itself is unconditional.
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet := c.Param("wallet") // Wallet address from the path
		// Run the transactional cascade
		session := ledger.NewSession(db)
		summary, err := session.DeleteUserCascade(wallet)
		if err != nil {
			respondError(c, err) // Rolled back, nothing was deleted
			return
		}
		// Invalidate every cache the cascade could have touched
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			ctx := context.Background()                                          // Context for Redis operations
			invalidateReports(ctx, rdb, cascadeInvalidations)                    // Counts, influence and sale parties changed
			utils.DeletePages(ctx, rdb, "browse:users", ledger.DefaultPageSize)  // Profile rows changed
			utils.DeletePages(ctx, rdb, "browse:assets", ledger.DefaultPageSize) // Owner column may dangle
		}
		// Return the per-category audit counts
		c.JSON(http.StatusOK, gin.H{"message": "User deleted", "summary": summary})
	}
}
