package services

import (
	"errors"
	"testing"

	"gym-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGymService_MarkAttendance(t *testing.T) {
	repo := new(MockRepository)
	svc := NewGymService(repo, fixedClock(), testLogger())

	repo.On("MarkAttendance", "2024-03-18", true, (*string)(nil)).
		Return(models.GymLog{ID: "g", Date: "2024-03-18", Attended: true}, nil).Once()

	log, err := svc.MarkAttendance("", true, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-18", log.Date)

	notes := "rest"
	repo.On("MarkAttendance", "2024-03-10", false, &notes).
		Return(models.GymLog{}, errors.New("disk full")).Once()

	_, err = svc.MarkAttendance("2024-03-10", false, &notes)
	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestGymService_Month(t *testing.T) {
	repo := new(MockRepository)
	svc := NewGymService(repo, fixedClock(), testLogger())

	repo.On("ListGymLogs").Return([]models.GymLog{
		{Date: "2024-03-04", Attended: true},
		{Date: "2024-03-02", Attended: false},
		{Date: "2024-02-28", Attended: true},
		{Date: "2024-03-05", Attended: true},
	}, nil)

	m, err := svc.Month("")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", m.Month)
	require.Len(t, m.Logs, 3)
	assert.Equal(t, "2024-03-02", m.Logs[0].Date)
	assert.Equal(t, 2, m.Attendance.Attended)
	assert.Equal(t, 3, m.Attendance.Total)
	assert.Equal(t, 67, m.Attendance.Percentage)

	feb, err := svc.Month("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 100, feb.Attendance.Percentage)
}
