package api

import (
	"log"

	"cpu-scheduling/config"
	"cpu-scheduling/internal/core"
	"cpu-scheduling/internal/metrics"
	"cpu-scheduling/internal/requests"
	"cpu-scheduling/internal/schedulers"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	collector *metrics.Collector
}

// NewSchedulerHandlerImpl builds the handler. collector may be nil.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, collector *metrics.Collector) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, collector: collector}
}

// NewApp wires the handler under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(&request)
	if err != nil {
		return s.fail(ctx, core.FirstComeFirstServe, err)
	}

	s.collector.RecordRun(response)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	timeQuantum := request.Quantum(s.config.RoundRobinTimeQuantum)
	log.Println("running roundRobin algorithm with timeQuantum =", timeQuantum)
	response, err := schedulers.ScheduleRoundRobin(&request, timeQuantum)
	if err != nil {
		return s.fail(ctx, core.RoundRobin, err)
	}

	s.collector.RecordRun(response)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	response, err := schedulers.ScheduleShortestJobFirst(&request)
	if err != nil {
		return s.fail(ctx, core.ShortestJobFirst, err)
	}

	s.collector.RecordRun(response)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	response, err := schedulers.ScheduleAllAlgorithms(&request, request.Quantum(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return s.fail(ctx, "all", err)
	}

	s.collector.RecordComparison(response)
	return ctx.JSON(response)
}

func invalidRequestFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
		"kind":  "invalid_request",
	})
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, algorithm core.Algorithm, err error) error {
	s.collector.RecordFailure(string(algorithm), err)

	if kind := core.ErrorKind(err); kind != "internal" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"kind":  kind,
		})
	}
	log.Printf("%s scheduling failed: %v", algorithm, err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
