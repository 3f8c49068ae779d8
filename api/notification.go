package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listNotifications(c *gin.Context) {
	notifications, unread, err := s.notifications.List(c, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unreadCount":   unread,
	})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	unread, err := s.notifications.MarkRead(c, requester(c), id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"unreadCount": unread,
	})
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	unread, err := s.notifications.MarkAllRead(c, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"unreadCount": unread,
	})
}

func (s *Server) deleteNotification(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	unread, err := s.notifications.Delete(c, requester(c), id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"unreadCount": unread,
	})
}

func (s *Server) deleteAllNotifications(c *gin.Context) {
	unread, err := s.notifications.DeleteAll(c, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"unreadCount": unread,
	})
}
