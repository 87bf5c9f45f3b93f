package v1

import (
	"net/http"
	"time"

	"github.com/familyledger/backend/internal/httputil"
	"github.com/familyledger/backend/internal/ledger"
	"github.com/familyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns the aggregated ledger statistics of the caller's family
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		400	{object}	StatsResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/v1/stats [get]
// @Param			fromDate	query	string	false	"Only count transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate	query	string	false	"Only count transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
func GetStats(c *gin.Context) {
	user, err := requireFamily(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &e,
		})
		return
	}

	var filter StatsQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{
			Error: &e,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.Where(&models.Transaction{FamilyID: *user.FamilyID}).Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &e,
		})
		return
	}

	entries := make([]ledger.Entry, 0, len(transactions))
	for _, transaction := range transactions {
		direction := ledger.Income
		if transaction.Category.IsExpense() {
			direction = ledger.Expense
		}

		entries = append(entries, ledger.Entry{
			ID:        transaction.ID.String(),
			Direction: direction,
			Label:     transaction.SubCategory,
			Amount:    transaction.Amount,
			Date:      transaction.Date,
		})
	}

	var from, until *time.Time
	if !filter.FromDate.IsZero() {
		f := time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC)
		from = &f
	}
	if !filter.UntilDate.IsZero() {
		u := time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day(), 23, 59, 59, 999999999, time.UTC)
		until = &u
	}

	stats := ledger.Summarize(entries, from, until)

	// Skipped entries are corrupt stored records, they need to show
	// up in the logs, not vanish into the aggregation
	if len(stats.Skipped) > 0 {
		log.Warn().
			Str("family", user.FamilyID.String()).
			Strs("transactions", stats.Skipped).
			Msg("skipped transactions with non-positive amounts during aggregation")
	}

	data := newStats(stats)
	c.JSON(http.StatusOK, StatsResponse{Data: &data})
}
