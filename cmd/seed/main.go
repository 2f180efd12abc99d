package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"consultdesk/internal/calendar"
	"consultdesk/internal/config"
	"consultdesk/internal/database"
	"consultdesk/internal/domain"
	"consultdesk/internal/logging"
	"consultdesk/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}
	logger := logging.New(cfg.Logging, cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db, repository.Models()...); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM contact_messages")
	db.Exec("DELETE FROM subscribers")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM reservations")

	ctx := context.Background()
	cal := calendar.New(cfg.Booking.Location, cfg.Booking.WindowDays)

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")
	reservations := repository.NewReservationRepository(db)
	clients := []string{"Amaka Obi", "Tunde Bello", "Zainab Yusuf", "Chidi Eze"}
	dates := cal.OfferableDates()
	created := 0
	for i := 0; i < 8 && len(dates) > 0; i++ {
		day := dates[rand.Intn(min(len(dates), 10))]
		slots := calendar.EnumerateSlots(day)
		res := &domain.Reservation{
			Name:    clients[i%len(clients)],
			Contact: fmt.Sprintf("+234 801 555 %04d", 1000+i),
			Date:    day.Format(domain.DateLayout),
			Time:    slots[rand.Intn(len(slots))],
		}
		if err := reservations.Commit(ctx, res); err != nil {
			if errors.Is(err, domain.ErrSlotConflict) {
				continue
			}
			log.Fatal("reservation:", err)
		}
		created++
	}
	log.Printf("Reservations created: %d", created)

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	reviews := repository.NewReviewRepository(db)
	company := "Lagos Creative Hub"
	role := "Founder"
	samples := []domain.Review{
		{Name: "Ngozi A.", ProjectType: "Web Development", Rating: 5, Body: "Clear plan, delivered on time.", Company: &company, Role: &role},
		{Name: domain.AnonymousName, ProjectType: "Branding & Design", Rating: 4, Body: "Thoughtful design direction.", IsAnonymous: true},
		{Name: "Kola M.", ProjectType: "Video & Photography", Rating: 5, Body: "Great eye for detail."},
		{Name: "Ife O.", ProjectType: "Creative Consulting", Rating: 3, Body: "Helpful session, would book again."},
	}
	for i := range samples {
		rv := samples[i]
		if err := reviews.Create(ctx, &rv); err != nil {
			log.Fatal("review:", err)
		}
		// first half approved so the public list is not empty
		if i < len(samples)/2 {
			if _, err := reviews.SetStatus(ctx, rv.ID, domain.ReviewApproved); err != nil {
				log.Fatal("approve:", err)
			}
		}
	}
	log.Printf("Reviews created: %d", len(samples))

	// ================== SUBSCRIBERS ==================
	subscribers := repository.NewSubscriberRepository(db)
	for _, email := range []string{"amaka@example.com", "tunde@example.com"} {
		if _, _, err := subscribers.Subscribe(ctx, email); err != nil {
			log.Fatal("subscriber:", err)
		}
	}

	log.Println("Seed complete")
}
