package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/vendor"

	"github.com/labstack/echo/v4"
)

func (s *Server) getVendors(ctx echo.Context) error {
	vendors, err := s.queries.GetAllVendors.Handle(
		ctx.Request().Context(), queries.NewGetAllVendorsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]VendorResponse, len(vendors))
	for i, item := range vendors {
		response[i] = toVendorResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	query, err := queries.NewGetVendorQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	result, err := s.queries.GetVendor.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toVendorResponse(result))
}

func (s *Server) createVendor(ctx echo.Context) error {
	var req VendorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	serviceType, err := vendor.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return badRequest(ctx, "Invalid vendor data: "+err.Error())
	}

	vendorID := kernel.NewUUID()
	cmd, err := commands.NewCreateVendorCommand(vendorID, req.Name, req.ContactInfo, serviceType, req.IsActive)
	if err != nil {
		return badRequest(ctx, "Invalid vendor data: "+err.Error())
	}

	if err := s.commands.CreateVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: vendorID.String()})
}

func (s *Server) updateVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	var req VendorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	serviceType, err := vendor.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return badRequest(ctx, "Invalid vendor data: "+err.Error())
	}

	cmd, err := commands.NewUpdateVendorCommand(id, req.Name, req.ContactInfo, serviceType, req.IsActive)
	if err != nil {
		return badRequest(ctx, "Invalid vendor data: "+err.Error())
	}

	if err := s.commands.UpdateVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) deleteVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	cmd, err := commands.NewDeleteVendorCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	if err := s.commands.DeleteVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
