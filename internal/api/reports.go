package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Report windows and date parsing

	"genesis_city/internal/ledger" // Transactional core and reports
	"genesis_city/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// reportTTL is how long a cached report response stays fresh
const reportTTL = 60 * time.Second

// ProposalsReportHandler lists DAO proposals created by a wallet
func ProposalsReportHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet := c.Query("wallet") // Creator wallet from the query string
		ctx := context.Background()
		cacheKey := "report:proposals:" + wallet // Keyed per creator
		// Try to get cached response
		var cached []ledger.ProposalRow
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"proposals": cached, "count": len(cached), "cached": true})
			return
		}
		// Run the report
		rows, err := ledger.NewSession(db).ProposalsByUser(wallet)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, rows, reportTTL)                              // Cache the rows
		c.JSON(http.StatusOK, gin.H{"proposals": rows, "count": len(rows), "cached": false}) // Return the report
	}
}

// BusinessRowResponse is a BusinessRow with display-normalized fields
type BusinessRowResponse struct {
	ledger.BusinessRow        // Typed report row
	Established        string `json:"established"` // Normalized establishment date
	Owner              string `json:"owner"`       // Username, or Abandoned when the owner is gone
}

// BusinessesReportHandler lists businesses established after a date
func BusinessesReportHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the cutoff date, format YYYY-MM-DD
		after, err := time.Parse("2006-01-02", c.Query("after"))
		if err != nil {
			// If the date is malformed, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, use YYYY-MM-DD"})
			return
		}
		ctx := context.Background()
		cacheKey := "report:businesses:" + c.Query("after") // Keyed per cutoff
		// Try to get cached response
		var cached []BusinessRowResponse
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"businesses": cached, "count": len(cached), "cached": true})
			return
		}
		// Run the report
		rows, err := ledger.NewSession(db).BusinessesAfter(after)
		if err != nil {
			respondError(c, err)
			return
		}
		// Shape the rows for display
		resp := make([]BusinessRowResponse, len(rows))
		for i, row := range rows {
			owner := "Abandoned" // Businesses with no owner are abandoned
			if row.Username != nil {
				owner = *row.Username
			}
			resp[i] = BusinessRowResponse{
				BusinessRow: row,                                    // Typed row
				Established: ledger.FormatDate(row.DateEstablished), // Normalized date
				Owner:       owner,                                  // Display owner
			}
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, reportTTL)                               // Cache the response
		c.JSON(http.StatusOK, gin.H{"businesses": resp, "count": len(resp), "cached": false}) // Return the report
	}
}

// LandSalesReportHandler aggregates MANA land sales over the last quarter
func LandSalesReportHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "report:landsales" // Fixed window, single key
		// Try to get cached response
		var cached gin.H
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			cached["cached"] = true
			c.JSON(http.StatusOK, cached)
			return
		}
		// Run the aggregate over the 90-day window
		since := time.Now().Add(-ledger.SalesWindow)
		summary, err := ledger.NewSession(db).LandSalesSummary(since)
		if err != nil {
			respondError(c, err)
			return
		}
		// Shape the money figures for display
		resp := gin.H{
			"period_start": ledger.FormatDate(since),                // Window start
			"period_end":   ledger.FormatDate(time.Now()),           // Window end
			"total_sales":  summary.TotalSales,                      // Number of sales
			"total_mana":   ledger.FormatPrice(summary.TotalVolume), // Normalized volume
			"avg_price":    ledger.FormatPrice(summary.AvgPrice),    // Normalized average
			"min_price":    ledger.FormatPrice(summary.MinPrice),    // Normalized minimum
			"max_price":    ledger.FormatPrice(summary.MaxPrice),    // Normalized maximum
			"cached":       false,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, reportTTL) // Cache the response
		c.JSON(http.StatusOK, resp)                             // Return the report
	}
}

// EventsReportHandler searches events by name keyword
func EventsReportHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("q") // Search keyword from the query string
		ctx := context.Background()
		cacheKey := "report:events:" + keyword // Keyed per keyword
		// Try to get cached response
		var cached []ledger.EventRow
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"events": cached, "count": len(cached), "cached": true})
			return
		}
		// Run the search
		rows, err := ledger.NewSession(db).EventsByKeyword(keyword)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, rows, reportTTL)                           // Cache the rows
		c.JSON(http.StatusOK, gin.H{"events": rows, "count": len(rows), "cached": false}) // Return the report
	}
}

// InfluenceReportHandler ranks voters by land holdings and votes cast
func InfluenceReportHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "report:influence" // Fixed limit, single key
		// Try to get cached response
		var cached []ledger.InfluenceRow
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"voters": cached, "count": len(cached), "cached": true})
			return
		}
		// Run the ranking
		rows, err := ledger.NewSession(db).VoterInfluence(ledger.InfluenceReportLimit)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, rows, reportTTL)                           // Cache the rows
		c.JSON(http.StatusOK, gin.H{"voters": rows, "count": len(rows), "cached": false}) // Return the report
	}
}

// SummaryReportHandler returns the headline entity counts
func SummaryReportHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		cacheKey := "report:summary" // Single key
		// Try to get cached response
		var cached ledger.SummaryStats
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"summary": cached, "cached": true})
			return
		}
		// Count the entities
		stats, err := ledger.NewSession(db).Summary()
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, stats, reportTTL)        // Cache the counts
		c.JSON(http.StatusOK, gin.H{"summary": stats, "cached": false}) // Return the counts
	}
}
