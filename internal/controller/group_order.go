package controller

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/azhuravlev/diplomdocs/internal/model"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/azhuravlev/diplomdocs/pkg/orderdoc"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type GroupOrderController struct {
	*baseController
}

func (gc GroupOrderController) GetGroupOrders(ctx *gin.Context) {
	page, pageSize := util.ParsePagination(ctx)

	orders, total, err := gc.app.Repository.GroupOrder.List(ctx, nil, ctx.Query("groupId"), page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list group orders", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"orders":    orders,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (gc GroupOrderController) GetGroupOrderById(ctx *gin.Context) {
	orderId := ctx.Param("order_id")

	order, err := gc.app.Repository.GroupOrder.GetById(ctx, nil, orderId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Group order not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get group order", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"order": order,
	})
}

// CreateGroupOrder registers a topic assignment order for a whole group.
// The order number is derived from the creation timestamp.
func (gc GroupOrderController) CreateGroupOrder(ctx *gin.Context) {
	authUser, err := gc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	var newOrder model.GroupOrder
	if err := ctx.ShouldBind(&newOrder); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid group order data", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := gc.app.Repository.Group.GetById(ctx, nil, newOrder.GroupID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Group not found", err, nil)
		return
	}

	now := time.Now()
	newOrder.OrderNumber = orderdoc.GroupOrderNumber(now)
	if newOrder.OrderDate == nil {
		newOrder.OrderDate = &now
	}
	newOrder.CreatedByID = authUser.ID

	order, err := gc.app.Repository.GroupOrder.Create(ctx, nil, newOrder)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusConflict, "Order with this number already exists", util.GenerateErrorMessages(err, "orderNumber"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create group order", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"order": order,
	})
}

func (gc GroupOrderController) loadOrderRoster(ctx *gin.Context, orderId string) (*model.GroupOrder, orderdoc.GroupOrderInfo, []orderdoc.RosterRow, error) {
	order, err := gc.app.Repository.GroupOrder.GetById(ctx, nil, orderId)
	if err != nil {
		return nil, orderdoc.GroupOrderInfo{}, nil, err
	}

	group, err := gc.app.Repository.Group.GetWithRoster(ctx, nil, order.GroupID)
	if err != nil {
		return nil, orderdoc.GroupOrderInfo{}, nil, err
	}

	students := make([]orderdoc.RosterStudent, 0, len(group.Students))
	for _, student := range group.Students {
		rs := orderdoc.RosterStudent{
			FullName: student.FullName(),
		}
		if dp := student.DiplomaProject; dp != nil {
			rs.HasProject = true
			rs.Topic = dp.Topic
			if dp.Supervisor != nil {
				rs.SupervisorFullName = dp.Supervisor.FullName()
				rs.SupervisorDegree = dp.Supervisor.AcademicDegree
				rs.SupervisorPosition = dp.Supervisor.Position
			}
		}
		students = append(students, rs)
	}

	orderDate := time.Now()
	if order.OrderDate != nil {
		orderDate = *order.OrderDate
	}

	info := orderdoc.GroupOrderInfo{
		OrderNumber: order.OrderNumber,
		OrderDate:   orderDate,
		GroupName:   group.Name,
		StudyFormRu: order.StudyForm.DisplayRu(),
		Direction:   order.Direction,
	}

	return order, info, orderdoc.BuildRoster(students), nil
}

// ExportGroupOrderDocx streams the rendered order as a Word document.
func (gc GroupOrderController) ExportGroupOrderDocx(ctx *gin.Context) {
	orderId := ctx.Param("order_id")

	order, info, rows, err := gc.loadOrderRoster(ctx, orderId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Group order not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load group order", err, nil)
		return
	}

	var buf bytes.Buffer
	if err := orderdoc.RenderGroupOrderDocx(&buf, info, rows); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to render document", err, nil)
		return
	}

	fileName := fmt.Sprintf("prikaz_%s.docx", order.OrderNumber)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, docxContentType, buf.Bytes())
}

// PreviewGroupOrder returns the order text parts without rendering a file.
func (gc GroupOrderController) PreviewGroupOrder(ctx *gin.Context) {
	orderId := ctx.Param("order_id")

	order, info, rows, err := gc.loadOrderRoster(ctx, orderId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Group order not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load group order", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"order":   order,
		"date":    orderdoc.FormatRuDate(info.OrderDate),
		"clause1": orderdoc.OrderClause1(info),
		"roster":  rows,
		"clause2": orderdoc.OrderClause2,
	})
}

// ExportStudentOrderDocx renders the individual topic assignment order for
// one student with a registered diploma project.
func (gc GroupOrderController) ExportStudentOrderDocx(ctx *gin.Context) {
	studentId := ctx.Param("student_id")

	d, err := gc.buildStudentOrderData(ctx, studentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Student or diploma project not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load student order data", err, nil)
		return
	}

	var buf bytes.Buffer
	if err := orderdoc.RenderStudentOrderDocx(&buf, d); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to render document", err, nil)
		return
	}

	fileName := fmt.Sprintf("prikaz_%s.docx", d.StudentTicket)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, docxContentType, buf.Bytes())
}

// PreviewStudentOrder returns the order text for one student.
func (gc GroupOrderController) PreviewStudentOrder(ctx *gin.Context) {
	studentId := ctx.Param("student_id")

	d, err := gc.buildStudentOrderData(ctx, studentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Student or diploma project not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load student order data", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"orderNumber": d.OrderNumber,
		"text":        orderdoc.StudentOrderText(d),
		"markdown":    orderdoc.StudentOrderMarkdown(d),
	})
}

func (gc GroupOrderController) buildStudentOrderData(ctx *gin.Context, studentId string) (orderdoc.StudentOrderData, error) {
	student, err := gc.app.Repository.Student.GetById(ctx, nil, studentId)
	if err != nil {
		return orderdoc.StudentOrderData{}, err
	}
	if student.DiplomaProject == nil {
		return orderdoc.StudentOrderData{}, gorm.ErrRecordNotFound
	}

	dp := student.DiplomaProject
	now := time.Now()

	d := orderdoc.StudentOrderData{
		OrderNumber:   orderdoc.StudentOrderNumber(student.StudentID, now),
		StudentName:   student.FullName(),
		StudentTicket: student.StudentID,
		Topic:         dp.Topic,
		CurrentDate:   now,
	}
	if dp.Supervisor != nil {
		d.SupervisorName = dp.Supervisor.FullName()
		d.SupervisorDegree = dp.Supervisor.AcademicDegree
		d.SupervisorPosition = dp.Supervisor.Position
	}
	if dp.RegistrationDate != nil {
		d.RegistrationDate = *dp.RegistrationDate
	}
	if dp.Deadline != nil {
		d.Deadline = *dp.Deadline
	}

	return d, nil
}
