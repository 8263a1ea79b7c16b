package http

import (
	"github.com/gin-gonic/gin"

	"gemini-gateway/pkg/response"
)

// Generate godoc
// @Summary     Generate text
// @Description Forwards a prompt plus optional generation/safety configuration to the remote model and returns the generated text.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Prompt and options"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Upstream generation failed"
// @Router      /api/v1/generation/text [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Model godoc
// @Summary     Bound model
// @Description Returns the remote model identifier this service is bound to.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Success     200 {object} modelResp
// @Router      /api/v1/generation/model [GET]
func (h *handler) Model(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ModelInfo(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ModelInfo: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, modelResp{Model: output.Model})
}
