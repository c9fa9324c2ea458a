package database

import (
	"github.com/google/uuid"
	"github.com/rlozano/blog-api/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Seed ensures a default admin account exists and, when the post table is
// empty, inserts a small fixed sample set. Idempotent; safe to run on every
// startup.
func (d Database) Seed(bcryptRounds int) error {
	adminCount, err := d.adminRepo.Count()
	if err != nil {
		return err
	}
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcryptRounds)
		if err != nil {
			return err
		}
		admin := &models.Admin{
			ID:       uuid.New(),
			Username: DefaultAdminUsername,
			Password: string(hashed),
			Role:     "admin",
		}
		if err := d.adminRepo.Add(admin); err != nil {
			return err
		}
		log.Info().Str("username", DefaultAdminUsername).Msg("Default admin created")
	}

	postCount, err := d.postRepo.Count()
	if err != nil {
		return err
	}
	if postCount == 0 {
		samples := []models.Post{
			{
				ID:        uuid.New(),
				Slug:      "infografico-tiempo",
				Title:     "Aportación 1: Infográfico de administración del tiempo",
				Excerpt:   "Impacto académico y profesional de gestionar el tiempo. Sistema 90/15, Matriz de Eisenhower.",
				Content:   "<h2>Propósito</h2><p>Crear un blog en formato digital y publicar la primera aportación.</p>",
				Tags:      models.TagList{"Hábitos", "Productividad", "Semana 1"},
				Published: true,
				Views:     42,
			},
			{
				ID:        uuid.New(),
				Slug:      "habitos-exitosos",
				Title:     "Aportación 2: 10 hábitos recomendados por gente exitosa",
				Excerpt:   "Análisis de los hábitos que personas exitosas comparten.",
				Content:   "<h2>Propósito</h2><p>Investigar y compartir hábitos saludables.</p>",
				Tags:      models.TagList{"Éxito", "Hábitos", "Desarrollo personal", "Semana 2"},
				Published: true,
				Views:     18,
			},
		}
		for i := range samples {
			if err := d.postRepo.Add(&samples[i]); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(samples)).Msg("Sample posts created")
	}

	return nil
}
