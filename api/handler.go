package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Anshitaa/os-scheduler-pro/config"
	"github.com/Anshitaa/os-scheduler-pro/internal/core"
	"github.com/Anshitaa/os-scheduler-pro/internal/requests"
	"github.com/Anshitaa/os-scheduler-pro/internal/responses"
	"github.com/Anshitaa/os-scheduler-pro/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// toProcesses maps the request jobs onto engine processes.
func toProcesses(jobs []requests.Job) []core.Process {
	processes := make([]core.Process, len(jobs))
	for i, job := range jobs {
		processes[i] = core.Process{
			Pid:         job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		}
		if job.Priority != nil {
			processes[i].Priority = core.NewPriority(*job.Priority)
		}
	}
	return processes
}

// schedule parses the request body, runs one algorithm over it and writes
// the response. Any engine error means no result was produced.
func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, run func([]core.Process) (core.Result, error)) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	result, err := run(toProcesses(request.Jobs))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(responses.FromResult(result))
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SchedulePriority)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SchedulePriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	result, err := schedulers.ScheduleRoundRobin(toProcesses(request.Jobs), s.timeQuantum(request))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(responses.FromResult(result))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	results, err := schedulers.ScheduleAll(toProcesses(request.Jobs), s.timeQuantum(request))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	response := responses.ComparisonResponse{Results: make([]responses.ScheduleResponse, len(results))}
	for i, result := range results {
		response.Results[i] = responses.FromResult(result)
	}
	return ctx.JSON(response)
}

// timeQuantum resolves the Round Robin quantum: the request value when set,
// the configured default when omitted. Explicit negatives stay invalid.
func (s *SchedulerHandlerImpl) timeQuantum(request requests.ScheduleRequest) float64 {
	if request.TimeQuantum == 0 {
		return s.config.RoundRobinTimeQuantum
	}
	return request.TimeQuantum
}
