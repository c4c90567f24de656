package handler

import (
	"net/http"
	"strconv"

	"go-tour-booking/internal/model"

	"github.com/gin-gonic/gin"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// GetPrincipal 從認證層塞進來的 header 取得呼叫者身份。
// 認證本身是外部協作者，這裡信任它給的 user id 與角色。
func GetPrincipal(c *gin.Context) (model.Principal, bool) {
	userIDStr := c.GetHeader("X-User-ID")
	role := model.Role(c.GetHeader("X-User-Role"))

	userID, err := strconv.Atoi(userIDStr)
	if err != nil || userID <= 0 || !role.IsValid() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Missing or invalid credentials",
		})
		return model.Principal{}, false
	}

	return model.Principal{UserID: userID, Role: role}, true
}
