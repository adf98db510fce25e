package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // Query parameter conversion

	"genesis_city/internal/ledger" // Transactional core and pager
	"genesis_city/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// pageParams reads page and page_size from the query string, clamped to sane
// bounds
func pageParams(c *gin.Context) (int, int) {
	page := 1                          // Default page number
	pageSize := ledger.DefaultPageSize // Default page size
	if p := c.Query("page"); p != "" {
		// Convert page to integer
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		// Convert page_size to integer
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size if valid
		}
	}
	return page, pageSize
}

// browsePage is the cached shape of one browse response page
type browsePage[T any] struct {
	Rows     []T  `json:"rows"`      // Page rows
	Page     int  `json:"page"`      // Page number
	PageSize int  `json:"page_size"` // Page size
	HasMore  bool `json:"has_more"`  // Whether another full page may follow
}

// ListUsersHandler pages through every user profile
func ListUsersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c) // Pagination parameters
		ctx := context.Background()
		cacheKey := "browse:users:page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
		// Try to get cached response
		var cached browsePage[ledger.UserRow]
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"users": cached.Rows, "page": cached.Page, "page_size": cached.PageSize, "has_more": cached.HasMore, "cached": true})
			return
		}
		// Position the pager and pull one page
		pager := ledger.NewSession(db).AllUsers(pageSize)
		pager.Seek(page)
		var rows []ledger.UserRow
		if _, err := pager.NextPage(&rows); err != nil {
			respondError(c, err)
			return
		}
		resp := browsePage[ledger.UserRow]{Rows: rows, Page: page, PageSize: pageSize, HasMore: !pager.Done()}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, reportTTL) // Cache the page
		c.JSON(http.StatusOK, gin.H{"users": rows, "page": page, "page_size": pageSize, "has_more": resp.HasMore, "cached": false})
	}
}

// ListAssetsHandler pages through every digital asset with its specialization
func ListAssetsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c) // Pagination parameters
		ctx := context.Background()
		cacheKey := "browse:assets:page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
		// Try to get cached response
		var cached browsePage[ledger.AssetRow]
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"assets": cached.Rows, "page": cached.Page, "page_size": cached.PageSize, "has_more": cached.HasMore, "cached": true})
			return
		}
		// Position the pager and pull one page
		pager := ledger.NewSession(db).AllAssets(pageSize)
		pager.Seek(page)
		var rows []ledger.AssetRow
		if _, err := pager.NextPage(&rows); err != nil {
			respondError(c, err)
			return
		}
		resp := browsePage[ledger.AssetRow]{Rows: rows, Page: page, PageSize: pageSize, HasMore: !pager.Done()}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, reportTTL) // Cache the page
		c.JSON(http.StatusOK, gin.H{"assets": rows, "page": page, "page_size": pageSize, "has_more": resp.HasMore, "cached": false})
	}
}
