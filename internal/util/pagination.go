package util

import (
	"strconv"

	"github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/gin-gonic/gin"
)

// ParsePagination reads page and pageSize query parameters, clamping them to
// sane bounds.
func ParsePagination(ctx *gin.Context) (uint, uint) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(ctx.DefaultQuery("pageSize", strconv.Itoa(int(constant.DefaultPageSize))))
	if err != nil || pageSize < 1 {
		pageSize = int(constant.DefaultPageSize)
	}
	if pageSize > int(constant.MaxPageSize) {
		pageSize = int(constant.MaxPageSize)
	}

	return uint(page), uint(pageSize)
}

func CalculateTotalPage(totalItems int64, pageSize uint) int {
	if pageSize <= 0 {
		pageSize = constant.DefaultPageSize
	}
	if totalItems == 0 {
		return 1
	}
	totalPage := int(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) != 0 {
		totalPage++
	}
	return totalPage
}
