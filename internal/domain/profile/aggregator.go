package profile

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/domain/appointments"
	"pet-shop-api/internal/domain/grooming"
	"pet-shop-api/internal/domain/medical"
	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/vaccinations"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
)

const daysPerYear = 365.25

// Limits son las ventanas "recientes". Los totales nunca dependen de ellas.
type Limits struct {
	RecentVisits     int
	RecentSessions   int
	PastAppointments int
}

var DefaultLimits = Limits{
	RecentVisits:     10,
	RecentSessions:   10,
	PastAppointments: 20,
}

// Lecturas que consume el agregador. Los repositorios de cada dominio las cumplen.

type PetReader interface {
	GetByID(ctx context.Context, id string, opts pets.LoadOptions) (pets.Pet, error)
}

type MedicalReader interface {
	ListByPet(ctx context.Context, petID string, limit, offset int) ([]medical.Record, error)
	CountByPet(ctx context.Context, petID string) (int, error)
	MetricsByPet(ctx context.Context, petID string) ([]medical.Metric, error)
}

type VaccinationReader interface {
	ListByPet(ctx context.Context, petID string, limit, offset int) ([]vaccinations.Vaccination, error)
	CountByPet(ctx context.Context, petID string) (int, error)
}

type GroomingReader interface {
	ListByPet(ctx context.Context, petID string, limit, offset int) ([]grooming.Session, error)
	CountByPet(ctx context.Context, petID string) (int, error)
	CostsByPet(ctx context.Context, petID string) ([]float64, error)
}

type AppointmentReader interface {
	ListByPet(ctx context.Context, petID string, rng appointments.PetRange) ([]appointments.Appointment, error)
	CountByPet(ctx context.Context, petID string) (int, error)
}

type Readers struct {
	Pets         PetReader
	Medical      MedicalReader
	Vaccinations VaccinationReader
	Grooming     GroomingReader
	Appointments AppointmentReader
}

type Service struct {
	r      Readers
	limits Limits
	log    logger.Logger
	now    func() time.Time
}

func NewService(r Readers, limits Limits, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{r: r, limits: limits, log: log, now: time.Now}
}

// resultados de cada grupo; cada goroutine escribe solo el suyo.
type medicalPart struct {
	recent  []medical.Record
	total   int
	metrics []medical.Metric
}

type vaccinationPart struct {
	all   []vaccinations.Vaccination
	total int
}

type groomingPart struct {
	recent []grooming.Session
	total  int
	costs  []float64
}

type appointmentPart struct {
	upcoming []appointments.Appointment
	past     []appointments.Appointment
	total    int
}

// CompleteProfile arma el perfil consolidado de una mascota activa.
// Orden: id inválido (400) antes de tocar storage, después NotFound, después Forbidden.
// Los cuatro grupos de lectura corren en paralelo; si uno falla, falla todo.
func (s *Service) CompleteProfile(ctx context.Context, p access.Principal, petID string) (Profile, error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return Profile{}, err
	}

	pet, err := s.r.Pets.GetByID(ctx, petID, pets.LoadOptions{Owner: true})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Profile{}, apperr.NotFound("pet")
		}
		return Profile{}, apperr.FromStorage(s.log, "profile.pet", err)
	}
	if err := access.CheckOwner(p, pet.OwnerUserID); err != nil {
		return Profile{}, err
	}

	now := s.now()

	var (
		med  medicalPart
		vac  vaccinationPart
		groo groomingPart
		apt  appointmentPart
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		med, err = s.loadMedical(gctx, petID)
		return err
	})
	g.Go(func() (err error) {
		vac, err = s.loadVaccinations(gctx, petID)
		return err
	})
	g.Go(func() (err error) {
		groo, err = s.loadGrooming(gctx, petID)
		return err
	})
	g.Go(func() (err error) {
		apt, err = s.loadAppointments(gctx, petID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return Profile{}, apperr.FromStorage(s.log, "profile.aggregate", err)
	}

	return assemble(pet, med, vac, groo, apt, now), nil
}

func (s *Service) loadMedical(ctx context.Context, petID string) (medicalPart, error) {
	var out medicalPart
	var err error
	if out.recent, err = s.r.Medical.ListByPet(ctx, petID, s.limits.RecentVisits, 0); err != nil {
		return out, err
	}
	if out.total, err = s.r.Medical.CountByPet(ctx, petID); err != nil {
		return out, err
	}
	out.metrics, err = s.r.Medical.MetricsByPet(ctx, petID)
	return out, err
}

func (s *Service) loadVaccinations(ctx context.Context, petID string) (vaccinationPart, error) {
	var out vaccinationPart
	var err error
	if out.all, err = s.r.Vaccinations.ListByPet(ctx, petID, 0, 0); err != nil {
		return out, err
	}
	out.total, err = s.r.Vaccinations.CountByPet(ctx, petID)
	return out, err
}

func (s *Service) loadGrooming(ctx context.Context, petID string) (groomingPart, error) {
	var out groomingPart
	var err error
	if out.recent, err = s.r.Grooming.ListByPet(ctx, petID, s.limits.RecentSessions, 0); err != nil {
		return out, err
	}
	if out.total, err = s.r.Grooming.CountByPet(ctx, petID); err != nil {
		return out, err
	}
	out.costs, err = s.r.Grooming.CostsByPet(ctx, petID)
	return out, err
}

func (s *Service) loadAppointments(ctx context.Context, petID string, now time.Time) (appointmentPart, error) {
	var out appointmentPart
	var err error
	if out.upcoming, err = s.r.Appointments.ListByPet(ctx, petID, appointments.PetRange{From: &now}); err != nil {
		return out, err
	}
	if out.past, err = s.r.Appointments.ListByPet(ctx, petID, appointments.PetRange{
		Before:     &now,
		Descending: true,
		Limit:      s.limits.PastAppointments,
	}); err != nil {
		return out, err
	}
	out.total, err = s.r.Appointments.CountByPet(ctx, petID)
	return out, err
}

func assemble(pet pets.Pet, med medicalPart, vac vaccinationPart, groo groomingPart, apt appointmentPart, now time.Time) Profile {
	prof := Profile{
		Pet: toPetSummary(pet),
		MedicalHistory: MedicalHistory{
			RecentVisits: mapSlice(med.recent, medical.ToResponse),
			TotalVisits:  med.total,
		},
		WeightHistory: weightHistory(pet, med.metrics),
		GroomingHistory: GroomingHistory{
			RecentSessions: mapSlice(groo.recent, grooming.ToResponse),
			TotalSessions:  groo.total,
		},
		Appointments: AppointmentSummary{
			Upcoming:          mapSlice(apt.upcoming, appointments.ToResponse),
			Past:              mapSlice(apt.past, appointments.ToResponse),
			TotalAppointments: apt.total,
		},
	}

	// Vacunas: lista completa con status, sublista due_soon y próximo vencimiento
	// (las vencidas no cuentan para next_vaccination_due).
	all := make([]vaccinations.VaccinationResponse, 0, len(vac.all))
	upcoming := make([]vaccinations.VaccinationResponse, 0)
	var nextDue *time.Time
	for _, v := range vac.all {
		resp := vaccinations.ToResponse(v, now)
		all = append(all, resp)
		if resp.Status == vaccinations.StatusDueSoon {
			upcoming = append(upcoming, resp)
		}
		if v.NextDueDate != nil && !v.NextDueDate.Before(now) {
			if nextDue == nil || v.NextDueDate.Before(*nextDue) {
				d := *v.NextDueDate
				nextDue = &d
			}
		}
	}
	prof.Vaccinations = VaccinationSummary{All: all, UpcomingVaccines: upcoming, TotalVaccines: vac.total}

	if len(groo.recent) > 0 {
		d := groo.recent[0].SessionDate
		prof.GroomingHistory.LastGrooming = &d
	}

	var spentMedical, spentGrooming float64
	for _, m := range med.metrics {
		spentMedical += m.ServiceCost
	}
	for _, c := range groo.costs {
		spentGrooming += c
	}

	prof.Summary = Summary{
		Age:                ageInYears(pet.BirthDate, now),
		NextVaccinationDue: nextDue,
		TotalSpentMedical:  round(spentMedical, 2),
		TotalSpentGrooming: round(spentGrooming, 2),
	}
	if len(med.recent) > 0 {
		d := med.recent[0].VisitDate
		prof.Summary.LastVisit = &d
	}
	return prof
}

// weightHistory mezcla el peso actual (manual) con los pesos de visitas.
// Orden por fecha descendente, sin deduplicar entre fuentes.
func weightHistory(pet pets.Pet, metrics []medical.Metric) []WeightEntry {
	out := make([]WeightEntry, 0, len(metrics)+1)
	if pet.Weight != nil {
		out = append(out, WeightEntry{Date: pet.UpdatedAt, Weight: *pet.Weight, Source: WeightManual})
	}
	for _, m := range metrics {
		if m.WeightAtVisit == nil {
			continue
		}
		out = append(out, WeightEntry{Date: m.VisitDate, Weight: *m.WeightAtVisit, Source: WeightMedical})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func ageInYears(birth *time.Time, now time.Time) *float64 {
	if birth == nil {
		return nil
	}
	days := now.Sub(*birth).Hours() / 24
	age := round(days/daysPerYear, 1)
	return &age
}

func round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

func toPetSummary(p pets.Pet) PetSummary {
	notes := p.BehaviorNotes
	if notes == nil {
		notes = []string{}
	}
	return PetSummary{
		ID:              p.ID,
		Name:            p.Name,
		Species:         p.Species,
		Breed:           p.Breed,
		Gender:          p.Gender,
		BirthDate:       p.BirthDate,
		Weight:          p.Weight,
		MicrochipNumber: p.MicrochipNumber,
		Temperament:     p.Temperament,
		BehaviorNotes:   notes,
		Owner:           p.Owner,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
