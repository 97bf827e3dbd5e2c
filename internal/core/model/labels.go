package model

func (s InternStatus) Label() string {
	switch s {
	case InternStatusActive:
		return "En stage"
	case InternStatusOnboarding:
		return "Intégration"
	case InternStatusAlumni:
		return "Ancien stagiaire"
	default:
		return string(s)
	}
}

func (s EmployeeStatus) Label() string {
	switch s {
	case EmployeeStatusActive:
		return "En poste"
	case EmployeeStatusLeave:
		return "En congé"
	default:
		return string(s)
	}
}

func (s ApplicantStage) Label() string {
	switch s {
	case ApplicantStageNew:
		return "Nouvelle"
	case ApplicantStageScreening:
		return "Présélection"
	case ApplicantStageInterview:
		return "Entretien"
	case ApplicantStageOffer:
		return "Proposition"
	case ApplicantStageRejected:
		return "Refusée"
	default:
		return string(s)
	}
}

func (k NotificationKind) Label() string {
	switch k {
	case NotificationKindInfo:
		return "Information"
	case NotificationKindWarning:
		return "Alerte"
	case NotificationKindSuccess:
		return "Succès"
	default:
		return string(k)
	}
}
