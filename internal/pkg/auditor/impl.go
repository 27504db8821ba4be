package auditor

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	"github.com/vreid/janken/internal/pkg/commitment"
	"github.com/vreid/janken/internal/pkg/common"
	"github.com/vreid/janken/internal/pkg/keygen"
	"github.com/vreid/janken/internal/pkg/rules"
)

// AuditorService lets a third party check a revealed round. It keeps no
// round state.
type AuditorService struct {
	Engine *rules.Engine
}

func NewAuditorService(i do.Injector) (*AuditorService, error) {
	engine := do.MustInvoke[*rules.Engine](i)

	result := &AuditorService{
		Engine: engine,
	}

	echoService, err := do.Invoke[*common.EchoService](i)
	if err != nil {
		return nil, fmt.Errorf("failed to create echo service: %w", err)
	}

	echoService.Register(result.Routes)

	return result, nil
}

func (s *AuditorService) Routes(e *echo.Echo) {
	apiGroup := e.Group("/api")

	commitmentGroup := apiGroup.Group("/commitment")
	commitmentGroup.POST("/verify", s.PostVerify)

	rulesGroup := apiGroup.Group("/rules")
	rulesGroup.GET("/moves", s.GetMoves)
	rulesGroup.GET("/outcome", s.GetOutcome)
	rulesGroup.GET("/matrix", s.GetMatrix)
}

func (s *AuditorService) PostVerify(c echo.Context) error {
	var request VerifyRequest

	err := c.Bind(&request)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if request.Move == "" || request.HMAC == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "move and hmac are required")
	}

	key, err := keygen.ParseSecretKey(request.Key)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid key")
	}

	valid := commitment.Verify(key, request.Move, commitment.Tag(request.HMAC))

	//nolint:wrapcheck
	return c.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

func (s *AuditorService) GetMoves(c echo.Context) error {
	//nolint:wrapcheck
	return c.JSON(http.StatusOK, MovesResponse{Moves: s.Engine.Moves()})
}

func (s *AuditorService) GetOutcome(c echo.Context) error {
	first := c.QueryParam("first")
	second := c.QueryParam("second")

	verdict, err := s.Engine.DetermineWinner(first, second)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	//nolint:wrapcheck
	return c.JSON(http.StatusOK, OutcomeResponse{
		First:   first,
		Second:  second,
		Verdict: verdict,
	})
}

func (s *AuditorService) GetMatrix(c echo.Context) error {
	//nolint:wrapcheck
	return c.JSON(http.StatusOK, MatrixResponse{
		Moves:  s.Engine.Moves(),
		Matrix: s.Engine.Matrix(),
	})
}
