package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
)

func TestCreateHospitalIsRetrievableByID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory())

	id, err := svc.CreateHospital(ctx, (&model.CreateHospitalRequest{
		Name:        "Apollo Hospital Bannerghatta",
		Address:     "Bannerghatta Rd",
		Specialties: []string{"oncology"},
	}).Hospital())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	hospitals, err := svc.ListHospitals(ctx, model.HospitalFilters{})
	require.NoError(t, err)
	require.Len(t, hospitals, 1)
	assert.Equal(t, id, hospitals[0].ID)
	// source defaults applied
	assert.Equal(t, "Bengaluru", hospitals[0].City)
	assert.Equal(t, model.HospitalTypeMultiSpecialty, hospitals[0].Type)
	assert.Equal(t, 4.5, hospitals[0].Rating)
}

func TestListHospitalsNameFilterIsCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory())

	_, err := svc.CreateHospital(ctx, (&model.CreateHospitalRequest{
		Name: "Narayana Health City", Address: "Bommasandra",
	}).Hospital())
	require.NoError(t, err)
	_, err = svc.CreateHospital(ctx, (&model.CreateHospitalRequest{
		Name: "Manipal Hospital", Address: "Old Airport Rd",
	}).Hospital())
	require.NoError(t, err)

	got, err := svc.ListHospitals(ctx, model.HospitalFilters{Q: "narayana"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Narayana Health City", got[0].Name)
}

func TestListHospitalsSpecialtyFilterIsExactMembership(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory())

	_, err := svc.CreateHospital(ctx, (&model.CreateHospitalRequest{
		Name: "NH", Address: "a", Specialties: []string{"cardiac", "neuro"},
	}).Hospital())
	require.NoError(t, err)
	_, err = svc.CreateHospital(ctx, (&model.CreateHospitalRequest{
		Name: "Smile Dental", Address: "b", Specialties: []string{"dental"},
	}).Hospital())
	require.NoError(t, err)

	got, err := svc.ListHospitals(ctx, model.HospitalFilters{Specialty: "cardiac"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "NH", got[0].Name)

	// membership, not substring
	got, err = svc.ListHospitals(ctx, model.HospitalFilters{Specialty: "card"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListDoctorsFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory())

	_, err := svc.CreateDoctor(ctx, (&model.CreateDoctorRequest{
		Name: "Dr. Rao", HospitalID: "h-1", Specialty: "cardiac",
	}).Doctor())
	require.NoError(t, err)
	_, err = svc.CreateDoctor(ctx, (&model.CreateDoctorRequest{
		Name: "Dr. Iyer", HospitalID: "h-2", Specialty: "cardiac",
	}).Doctor())
	require.NoError(t, err)

	got, err := svc.ListDoctors(ctx, model.DoctorFilters{HospitalID: "h-1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Rao", got[0].Name)

	got, err = svc.ListDoctors(ctx, model.DoctorFilters{Specialty: "cardiac"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// doctor defaults
	assert.Equal(t, 5, got[0].ExperienceYears)
	assert.Equal(t, []string{"en", "hi", "kn"}, got[0].Languages)
	assert.Equal(t, 1000.0, got[0].ConsultationFee)
}

func TestListTreatmentsByCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory())

	inr := func(v float64) *float64 { return &v }
	_, err := svc.CreateTreatment(ctx, (&model.CreateTreatmentRequest{
		Name: "CABG", Category: "cardiac", AverageCostINRMin: inr(250000), AverageCostINRMax: inr(450000),
	}).Treatment())
	require.NoError(t, err)
	_, err = svc.CreateTreatment(ctx, (&model.CreateTreatmentRequest{
		Name: "Implants", Category: "dental", AverageCostINRMin: inr(25000), AverageCostINRMax: inr(60000),
	}).Treatment())
	require.NoError(t, err)

	got, err := svc.ListTreatments(ctx, model.TreatmentFilters{Category: "cardiac"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CABG", got[0].Name)

	// default category when omitted
	_, err = svc.CreateTreatment(ctx, (&model.CreateTreatmentRequest{
		Name: "Checkup", AverageCostINRMin: inr(500), AverageCostINRMax: inr(1500),
	}).Treatment())
	require.NoError(t, err)

	got, err = svc.ListTreatments(ctx, model.TreatmentFilters{Category: "general"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].TypicalStayDays)
}
