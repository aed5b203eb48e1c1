package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	_ "github.com/lib/pq"

	"github.com/Hayzedd-A/appointment-booking/internal/config"
	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	appointmentRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/appointment"
	settingsRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/settings"
	"github.com/Hayzedd-A/appointment-booking/pkg/logger"
	"github.com/Hayzedd-A/appointment-booking/pkg/ptr"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// Утилита наполняет базу случайными записями для локальной разработки.
// Использует те же репозитории, что и сервис, поэтому данные всегда
// согласованы с настройками расписания.
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	count := flag.Int("n", 30, "number of appointments to create")
	days := flag.Int("days", 14, "spread appointments over the next N days")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	settingsRepository := settingsRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db)

	settings, err := settingsRepository.Get(ctx)
	if err != nil {
		// Без настроек слоты не посчитать - создаем дефолтные
		settings, err = settingsRepository.Create(ctx, domain.DefaultScheduleSettings())
		if err != nil {
			log.Fatal("Failed to create default settings: %v", err)
		}
		log.Info("Created default schedule settings")
	}

	startMin := settings.StartTime.Minutes()
	endMin := settings.EndTime.Minutes()
	step := settings.SessionDurationMinutes
	slotsPerDay := (endMin - startMin + step - 1) / step

	created := 0
	for attempts := 0; created < *count && attempts < *count*10; attempts++ {
		date := time.Now().AddDate(0, 0, rand.Intn(*days)+1)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		if !settings.IsWorkingDay(date) {
			continue
		}

		slot := startMin + rand.Intn(slotsPerDay)*step
		startTime, err := types.NewTimeStringFromMinutes(slot)
		if err != nil {
			continue
		}

		kind := domain.KindVisit
		var address *string
		if rand.Intn(3) == 0 {
			kind = domain.KindAccommodate
			address = ptr.Ptr(gofakeit.Address().Address)
		}

		sessions := 1
		if rand.Intn(4) == 0 {
			sessions = 2
		}

		appt := &domain.Appointment{
			Name:            gofakeit.Name(),
			Phone:           gofakeit.Phone(),
			Kind:            kind,
			Address:         address,
			ExtraInfo:       ptr.Ptr(gofakeit.Sentence(6)),
			Date:            date,
			StartTime:       startTime,
			Sessions:        sessions,
			DurationMinutes: sessions * settings.SessionDurationMinutes,
			Status:          domain.StatusPending,
		}

		// Пропускаем занятые слоты, чтобы данные оставались валидными
		existing, err := appointmentRepository.List(ctx, domain.AppointmentsFilter{Date: &date})
		if err != nil {
			log.Fatal("Failed to list appointments: %v", err)
		}
		conflict := false
		for _, e := range existing {
			if e.Overlaps(appt.StartMinutes(), appt.StartMinutes()+appt.DurationMinutes) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		if _, err := appointmentRepository.Create(ctx, appt); err != nil {
			log.Fatal("Failed to create appointment: %v", err)
		}
		created++
	}

	log.Info("Seeded %d appointments", created)
}
