package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"weekly-menu-planner/internal/app"
	"weekly-menu-planner/internal/catalog"
	"weekly-menu-planner/internal/export"
	"weekly-menu-planner/internal/metrics"
	"weekly-menu-planner/internal/planner"
	"weekly-menu-planner/internal/pricing"
)

// Handler serves the household planning API on top of the app layer.
type Handler struct {
	app     *app.App
	dataDir string
}

// NewHandler creates a new Handler.
func NewHandler(a *app.App, dataDir string) *Handler {
	return &Handler{app: a, dataDir: dataDir}
}

type recipeView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CostPerPerson float64 `json:"cost_per_person"`
}

type slotView struct {
	Day         string       `json:"day"`
	Meal        string       `json:"meal"`
	Suggestions []recipeView `json:"suggestions"`
	Selected    recipeView   `json:"selected"`
}

type planView struct {
	Settings planner.Settings `json:"settings"`
	Week     []slotView       `json:"week"`
}

func newPlanView(state *planner.PlanState) planView {
	view := planView{Settings: state.Settings}
	for _, day := range planner.Days {
		for _, mt := range catalog.MealTypes {
			slot, ok := state.Slots[planner.SlotKey(day, mt)]
			if !ok {
				continue
			}
			sv := slotView{Day: day, Meal: string(mt)}
			for _, id := range slot.SuggestedMealIDs {
				if r, ok := catalog.ByID(id); ok {
					sv.Suggestions = append(sv.Suggestions, newRecipeView(r))
				}
			}
			if r, ok := catalog.ByID(slot.SelectedMealID); ok {
				sv.Selected = newRecipeView(r)
			}
			view.Week = append(view.Week, sv)
		}
	}
	return view
}

func newRecipeView(r catalog.Recipe) recipeView {
	return recipeView{ID: r.ID, Name: r.Name, CostPerPerson: pricing.CostPerPerson(r)}
}

// GetHealth reports liveness plus runtime stats.
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"sys":    metrics.GetSysHealth(h.dataDir),
	})
}

// GetPlan returns the current weekly plan, regenerating if none exists.
func (h *Handler) GetPlan(c *gin.Context) {
	state, err := h.app.CurrentPlan(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlanView(state))
}

// RegenerateWeek rebuilds the full 21-slot plan with the posted settings.
func (h *Handler) RegenerateWeek(c *gin.Context) {
	var settings planner.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload: " + err.Error()})
		return
	}
	state, err := h.app.RegenerateWeek(c.Request.Context(), settings)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlanView(state))
}

// RegenerateSlot re-scores a single (day, meal) slot.
func (h *Handler) RegenerateSlot(c *gin.Context) {
	day, mt, ok := h.slotParams(c)
	if !ok {
		return
	}
	slot, state, err := h.app.RegenerateSlot(c.Request.Context(), day, mt)
	if err != nil {
		h.domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slot": slot,
		"plan": newPlanView(state),
	})
}

type selectRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
}

// SelectMeal records an explicit selection for one slot. Ids outside the
// slot's suggestion list are rejected with 422 and the plan is unchanged.
func (h *Handler) SelectMeal(c *gin.Context) {
	day, mt, ok := h.slotParams(c)
	if !ok {
		return
	}
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_id is required"})
		return
	}
	state, err := h.app.SelectMeal(c.Request.Context(), day, mt, req.RecipeID)
	if err != nil {
		h.domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlanView(state))
}

// GetGroceries returns the aggregated, categorized shopping list.
func (h *Handler) GetGroceries(c *gin.Context) {
	list, _, err := h.app.Groceries(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ExportGroceries streams the shopping list as CSV.
func (h *Handler) ExportGroceries(c *gin.Context) {
	list, _, err := h.app.Groceries(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="groceries.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.WriteGroceriesCSV(c.Writer, list); err != nil {
		log.Printf("Error writing groceries CSV: %v", err)
	}
}

// ExportPlan streams the weekly plan as CSV.
func (h *Handler) ExportPlan(c *gin.Context) {
	state, err := h.app.CurrentPlan(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="plan.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.WritePlanCSV(c.Writer, state); err != nil {
		log.Printf("Error writing plan CSV: %v", err)
	}
}

func (h *Handler) slotParams(c *gin.Context) (string, catalog.MealType, bool) {
	day, ok := planner.ParseDay(c.Param("day"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown day: " + c.Param("day")})
		return "", "", false
	}
	mt, ok := planner.ParseMealType(c.Param("meal"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown meal type: " + c.Param("meal")})
		return "", "", false
	}
	return day, mt, true
}

func (h *Handler) domainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrNotSuggested):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, planner.ErrUnknownSlot):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.internalError(c, err)
	}
}

func (h *Handler) internalError(c *gin.Context, err error) {
	log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
