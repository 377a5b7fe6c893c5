package catalog

// PlanTier identifies a subscription plan.
type PlanTier string

const (
	PlanIndividual  PlanTier = "Individual"
	PlanFamiliar    PlanTier = "Familiar"
	PlanInstitucion PlanTier = "Institución Educativa"
)

// Valid reports whether t is one of the known plan tiers.
func (t PlanTier) Valid() bool {
	switch t {
	case PlanIndividual, PlanFamiliar, PlanInstitucion:
		return true
	}
	return false
}

// AllowsMultipleProfiles reports whether the plan unlocks the
// add-profile action on the dashboard.
func (t PlanTier) AllowsMultipleProfiles() bool {
	return t == PlanFamiliar || t == PlanInstitucion
}

// Plan describes a subscription offering shown during registration.
type Plan struct {
	Tier        PlanTier
	Price       string
	Description string
	Features    []string
	ButtonText  string
	Highlight   bool
}

// Plans lists the subscription offerings in display order.
var Plans = []Plan{
	{
		Tier:  PlanIndividual,
		Price: "$9.99/mes",
		Features: []string{
			"Acceso a todos los niveles y lecciones",
			"Soporte por IA en lecciones",
			"Seguimiento de progreso personal",
			"Un perfil de estudiante",
		},
		ButtonText: "Empezar ahora",
	},
	{
		Tier:  PlanFamiliar,
		Price: "$19.99/mes",
		Features: []string{
			"Acceso completo para hasta 5 perfiles",
			"Todos los niveles y lecciones",
			"Soporte de IA para cada perfil",
			"Panel de control parental para seguir el progreso",
		},
		ButtonText: "Elegir plan Familiar",
		Highlight:  true,
	},
	{
		Tier:        PlanInstitucion,
		Price:       "Personalizado",
		Description: "Perfecto para colegios, academias de código y centros educativos que buscan llevar la programación a sus aulas.",
		Features: []string{
			"Licencias para toda la clase o institución",
			"Panel de control para educadores y administradores",
			"Seguimiento detallado del progreso por estudiante y clase",
			"Reportes de rendimiento avanzados y exportables",
			"Materiales curriculares y guías para el profesor",
			"Certificados personalizables con el logo de la institución",
			"Soporte prioritario y gestor de cuenta dedicado",
		},
		ButtonText: "Solicitar una Demo",
	},
}
