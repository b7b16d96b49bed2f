package repository

import (
	"time"

	"github.com/alex909w/eventify/internal/events/models"
)

// Built-in demo catalog shown before anyone has created an event.
// Content mirrors the launch catalog of the mobile app.

func seedTime(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

// SeedSummaries returns the demo event summaries.
func SeedSummaries() []models.EventSummary {
	return []models.EventSummary{
		{
			ID:          "1",
			Title:       "Cena de gala empresarial",
			Date:        "15 Jun 2025",
			Location:    "Parque Central",
			Image:       "/assets/evento1.jpg",
			Category:    models.CategoryFeatured,
			Organizer:   "Cámara de Comercio",
			OrganizerID: "seed-organizer-1",
			CreatedAt:   seedTime(1),
		},
		{
			ID:          "2",
			Title:       "Networking Profesional",
			Date:        "22 Jun 2025",
			Location:    "Centro de Convenciones",
			Image:       "/assets/evento2.png",
			Category:    models.CategoryFeatured,
			Organizer:   "Asociación de Profesionales",
			OrganizerID: "seed-organizer-2",
			CreatedAt:   seedTime(2),
		},
		{
			ID:          "3",
			Title:       "Festival de mascotas",
			Date:        "25 Jun 2025",
			Location:    "Club Canino",
			Image:       "/assets/evento3.jpg",
			Category:    models.CategoryUpcoming,
			Organizer:   "Asociación de Amantes de las Mascotas",
			OrganizerID: "seed-organizer-3",
			CreatedAt:   seedTime(3),
		},
		{
			ID:          "4",
			Title:       "Conferencia tecnológica",
			Date:        "30 Jun 2025",
			Location:    "Plaza Principal",
			Image:       "/assets/evento4.jpg",
			Category:    models.CategoryUpcoming,
			Organizer:   "Tech Community",
			OrganizerID: "seed-organizer-4",
			CreatedAt:   seedTime(4),
		},
	}
}

// SeedDetail returns the demo detail record for a seed event id.
func SeedDetail(eventID string) (*models.EventDetail, bool) {
	details := map[string]models.EventDetail{
		"1": {
			ID:          "1",
			Title:       "Cena de gala empresarial",
			Description: "Únete a nosotros para una elegante cena de gala empresarial. Una noche especial para networking, reconocimientos y celebración de logros empresariales.",
			Date:        "15 de Junio, 2025",
			Time:        "7:00 PM - 11:00 PM",
			Location:    "Parque Central",
			Organizer:   "Cámara de Comercio",
			OrganizerID: "seed-organizer-1",
			Image:       "/assets/evento1.jpg",
			Attendees:   150,
			CreatedAt:   seedTime(1),
		},
		"2": {
			ID:          "2",
			Title:       "Networking Profesional",
			Description: "Evento de networking profesional diseñado para conectar a profesionales de diferentes industrias. Intercambia tarjetas de presentación y construye relaciones valiosas.",
			Date:        "22 de Junio, 2025",
			Time:        "6:00 PM - 9:00 PM",
			Location:    "Centro de Convenciones",
			Organizer:   "Asociación de Profesionales",
			OrganizerID: "seed-organizer-2",
			Image:       "/assets/evento2.png",
			Attendees:   200,
			CreatedAt:   seedTime(2),
		},
		"3": {
			ID:          "3",
			Title:       "Festival de mascotas",
			Description: "Un festival lleno de diversión para toda la familia y sus mascotas. Concursos, exhibiciones, adopciones responsables y muchas actividades divertidas.",
			Date:        "25 de Junio, 2025",
			Time:        "10:00 AM - 6:00 PM",
			Location:    "Club Canino",
			Organizer:   "Asociación de Amantes de las Mascotas",
			OrganizerID: "seed-organizer-3",
			Image:       "/assets/evento3.jpg",
			Attendees:   300,
			CreatedAt:   seedTime(3),
		},
		"4": {
			ID:          "4",
			Title:       "Conferencia tecnológica",
			Description: "Conferencia sobre las últimas tendencias en tecnología: inteligencia artificial, blockchain, desarrollo web y las innovaciones que están transformando el mundo digital.",
			Date:        "30 de Junio, 2025",
			Time:        "9:00 AM - 5:00 PM",
			Location:    "Plaza Principal",
			Organizer:   "Tech Community",
			OrganizerID: "seed-organizer-4",
			Image:       "/assets/evento4.jpg",
			Attendees:   250,
			CreatedAt:   seedTime(4),
		},
	}

	detail, ok := details[eventID]
	if !ok {
		return nil, false
	}
	return &detail, true
}
