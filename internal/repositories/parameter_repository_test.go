package repositories

import (
	"equipment-api/internal/entities"
	apperrors "equipment-api/pkg/errors"
)

func (s *RepositoryTestSuite) TestParameterRoundTrip() {
	created := s.createParameter("Pressure", 3)

	found, err := s.Parameters.FindParameter(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(entities.Parameter{
		ID: created.ID, Name: "Pressure", Description: "d", EquipmentCode: "CODE", EquipmentID: 3,
	}, *found)
}

func (s *RepositoryTestSuite) TestParameterIDsStartAtOnePerTable() {
	s.createEquipment("A")
	s.createEquipment("B")

	s.Equal(uint64(1), s.createParameter("first", 1).ID)
	s.Equal(uint64(2), s.createParameter("second", 1).ID)
}

func (s *RepositoryTestSuite) TestUpdateParameterKeepsEquipmentID() {
	e := s.createEquipment("PUMP1")
	p := s.createParameter("Pressure", e.ID)

	err := s.Parameters.UpdateParameter(s.ctx, p.ID, entities.Parameter{
		Name: "Pressure, bar", Description: "nd", EquipmentCode: "OTHER", EquipmentID: 42,
	})
	s.Require().NoError(err)

	found, err := s.Parameters.FindParameter(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Pressure, bar", found.Name)
	s.Equal("nd", found.Description)
	s.Equal("OTHER", found.EquipmentCode)
	s.Equal(e.ID, found.EquipmentID)

	owner, err := s.Equipments.FindEquipment(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal([]entities.Parameter{*found}, owner.Parameters)
	s.Equal("PUMP1", owner.Code, "equipmentCode is not kept in sync with the owner")
}

func (s *RepositoryTestSuite) TestUpdateMissingParameter() {
	s.createParameter("Pressure", 1)

	err := s.Parameters.UpdateParameter(s.ctx, 50, entities.Parameter{Name: "x", Description: "x", EquipmentCode: "x"})
	s.ErrorIs(err, apperrors.ErrNotFound)

	params, err := s.Parameters.GetParameters(s.ctx)
	s.Require().NoError(err)
	s.Equal("Pressure", params[0].Name)
}

func (s *RepositoryTestSuite) TestDeleteParameterRemovesItFromEquipmentView() {
	e := s.createEquipment("PUMP1")
	p1 := s.createParameter("Pressure", e.ID)
	p2 := s.createParameter("Flow", e.ID)
	p3 := s.createParameter("Temp", e.ID)

	s.Require().NoError(s.Parameters.DeleteParameter(s.ctx, p2.ID))

	_, err := s.Parameters.FindParameter(s.ctx, p2.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	owner, err := s.Equipments.FindEquipment(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal([]entities.Parameter{*p1, *p3}, owner.Parameters)

	s.ErrorIs(s.Parameters.DeleteParameter(s.ctx, p2.ID), apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestGetParametersEmpty() {
	params, err := s.Parameters.GetParameters(s.ctx)
	s.Require().NoError(err)
	s.NotNil(params)
	s.Empty(params)
}
