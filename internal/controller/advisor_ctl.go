package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"buyingbd_storefront/internal/api/dto"
	"buyingbd_storefront/internal/service"
)

// AdvisorController 采购顾问对话
type AdvisorController struct {
	sessions *service.SessionRegistry
}

func NewAdvisorController(sessions *service.SessionRegistry) *AdvisorController {
	return &AdvisorController{sessions: sessions}
}

// Ask 向顾问提问
// @Summary 向采购顾问提问
// @Description 顾问失败时仍返回 200，reply 为兜底文案，error_kind 给出失败分类
// @Tags Advisor
// @Accept json
// @Produce json
// @Param body body dto.AskRequest true "问题"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} map[string]interface{} "问题为空"
// @Failure 409 {object} map[string]interface{} "上一个问题仍在回答中"
// @Failure 429 {object} map[string]interface{} "提问过于频繁"
// @Router /api/advisor/ask [post]
func (ctrl *AdvisorController) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}

	reply, err := front.Ask(c.Request.Context(), req.Query)
	resp := dto.AskResponse{Reply: reply}
	if err != nil {
		var ae *service.AdvisorError
		if !errors.As(err, &ae) {
			serviceError(c, err)
			return
		}
		resp.ErrorKind = string(ae.Kind)
	}
	resp.History = front.ChatHistory()

	success(c, http.StatusOK, resp)
}

// History 对话记录
// @Summary 顾问对话记录
// @Tags Advisor
// @Produce json
// @Success 200 {array} model.ChatMessage
// @Router /api/advisor/history [get]
func (ctrl *AdvisorController) History(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	success(c, http.StatusOK, front.ChatHistory())
}
