package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"jd-generator-backend/controllers"
	jobdeschandler "jd-generator-backend/lib/job-description"
	apimodels "jd-generator-backend/models/api"
	jobdescapimodels "jd-generator-backend/models/api/jobdesc"
)

type jobDescApiController struct {
	controllers.BaseAPIController
}

func InitJobDescApiRouters(app *fiber.App) {
	controller := jobDescApiController{}
	app.Post("generate-job-description", controller.GenerateJobDescription)
	app.Get("health", controller.Health)
	app.Get("example", controller.Example)
	app.Get("designations", controller.Designations)
}

// @Summary Generate job description variations
// @Tags Job Description
// @Description Generate 3 AI-generated job description variations for the given designation
// @Param	body	body	jobdescapimodels.GenerationRequest	true	"request body"
// @Success 200 {object} jobdescapimodels.GenerationResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /generate-job-description [post]
func (c *jobDescApiController) GenerateJobDescription(ctx *fiber.Ctx) error {
	var payload jobdescapimodels.GenerationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read request body", err))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid request", err))
	}

	records, err := jobdeschandler.Instance.GenerateDescriptions(ctx.UserContext(), payload.Designation, payload.Yoe, payload.Skills, payload.ExtraInfo)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to generate job descriptions", err))
	}

	return ctx.JSON(jobdescapimodels.GenerationResponse{
		Success: true,
		Data:    records,
		Message: fmt.Sprintf("Successfully generated %d job description variations", len(records)),
		Count:   len(records),
	})
}

// @Summary Service health
// @Tags Health
// @Description Report API and generator status
// @Success 200 {object} map[string]string
// @router /health [get]
func (c *jobDescApiController) Health(ctx *fiber.Ctx) error {
	generatorStatus := "initialized"
	message := "API is running successfully"
	if err := jobdeschandler.CheckConfig(); err != nil {
		generatorStatus = "failed"
		message = fmt.Sprintf("Generator initialization failed: %s", err.Error())
	}
	return ctx.JSON(fiber.Map{
		"status":           "healthy",
		"service":          "Job Description Generator API",
		"generator_status": generatorStatus,
		"message":          message,
	})
}

// @Summary Example request
// @Tags Documentation
// @Description Get an example request body for job description generation
// @Success 200 {object} map[string]interface{}
// @router /example [get]
func (c *jobDescApiController) Example(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"example_request": jobdescapimodels.GenerationRequest{
			Designation: "Software Engineer",
			Yoe:         5,
			Skills:      []string{"Python", "Django", "React", "AWS"},
			ExtraInfo:   "Experience with microservices architecture and agile development",
		},
		"usage": "POST /generate-job-description with the above JSON structure",
	})
}

// @Summary Supported designations
// @Tags Documentation
// @Description Get a list of commonly supported job designations
// @Success 200 {object} map[string]interface{}
// @router /designations [get]
func (c *jobDescApiController) Designations(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"supported_designations": []string{
			"Software Engineer",
			"Senior Software Engineer",
			"Full Stack Developer",
			"Frontend Developer",
			"Backend Developer",
			"DevOps Engineer",
			"Data Scientist",
			"Data Engineer",
			"Product Manager",
			"Project Manager",
			"Business Analyst",
			"QA Engineer",
			"Technical Lead",
			"Engineering Manager",
			"UX/UI Designer",
			"System Administrator",
			"Database Administrator",
			"Cybersecurity Specialist",
		},
		"note": "This API can generate descriptions for any job designation, not limited to this list",
	})
}
