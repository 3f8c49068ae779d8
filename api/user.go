package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultLeaderboardLimit = 10

func (s *Server) userStats(c *gin.Context) {
	stats, err := s.donations.Stats(c, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Server) userProfile(c *gin.Context) {
	user, err := s.store.GetUser(c, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) publicProfile(c *gin.Context) {
	id, ok := objectIDParam(c, "userId")
	if !ok {
		return
	}

	profile, err := s.donations.PublicProfile(c, id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, profile)
}

// positiveQuery parses an optional positive integer from the query string
func positiveQuery(c *gin.Context, key string, fallback int64) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return 0, false
	}
	return v, true
}

func (s *Server) leaderboard(c *gin.Context) {
	page, ok := positiveQuery(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := positiveQuery(c, "limit", defaultLeaderboardLimit)
	if !ok {
		return
	}

	users, total, err := s.store.Leaderboard(c, page, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":   users,
		"total":   total,
		"page":    page,
		"hasMore": total > (page-1)*limit+int64(len(users)),
	})
}

func (s *Server) claimBadge(c *gin.Context) {
	user, badge, err := s.reputation.ClaimBadge(c, requester(c), c.Param("name"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"badge":   badge,
		"user":    user,
	})
}
