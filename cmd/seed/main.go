package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gymhub/internal/config"
	"gymhub/internal/db"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.MembershipPlan{},
		&model.Trainer{},
		&model.Testimonial{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	planRepo := repository.NewPlanRepository(gormDB)
	trainerRepo := repository.NewTrainerRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)

	plansCreated, err := seedPlans(ctx, planRepo)
	if err != nil {
		log.Fatalf("Failed to seed membership plans: %v", err)
	}

	trainersCreated, err := seedTrainers(ctx, trainerRepo)
	if err != nil {
		log.Fatalf("Failed to seed trainers: %v", err)
	}

	testimonialsCreated, err := seedTestimonials(ctx, testimonialRepo)
	if err != nil {
		log.Fatalf("Failed to seed testimonials: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Membership plans created: %d", plansCreated)
	log.Printf("  - Trainers created: %d", trainersCreated)
	log.Printf("  - Testimonials created: %d", testimonialsCreated)
}

// seedPlans inserts the default membership plans, skipping labels that
// already exist.
func seedPlans(ctx context.Context, repo repository.PlanRepository) (int, error) {
	plans := []model.MembershipPlan{
		{Plan: "Basic", Price: decimal.NewFromInt(999)},
		{Plan: "Standard", Price: decimal.NewFromInt(1499)},
		{Plan: "Premium", Price: decimal.NewFromInt(2499)},
		{Plan: "Annual", Price: decimal.NewFromInt(14999)},
	}

	created := 0
	for _, plan := range plans {
		_, err := repo.FindByLabel(ctx, plan.Plan)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}
		plan := plan
		if err := repo.Create(ctx, &plan); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// seedTrainers inserts the default trainers, skipping names that already exist.
func seedTrainers(ctx context.Context, repo repository.TrainerRepository) (int, error) {
	trainers := []model.Trainer{
		{Name: "Arjun Mehta", Gender: "Male", Phone: "9800000001", Salary: decimal.NewFromInt(35000), Specialization: "Strength Training"},
		{Name: "Priya Sharma", Gender: "Female", Phone: "9800000002", Salary: decimal.NewFromInt(32000), Specialization: "Yoga & Mobility"},
		{Name: "Daniel Okoro", Gender: "Male", Phone: "9800000003", Salary: decimal.NewFromInt(38000), Specialization: "CrossFit"},
		{Name: "Sara Lindqvist", Gender: "Female", Phone: "9800000004", Salary: decimal.NewFromInt(36000), Specialization: "Cardio & HIIT"},
	}

	created := 0
	for _, trainer := range trainers {
		_, err := repo.FindByName(ctx, trainer.Name)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}
		trainer := trainer
		if err := repo.Create(ctx, &trainer); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// seedTestimonials inserts the default testimonials, skipping names that
// already exist.
func seedTestimonials(ctx context.Context, repo repository.TestimonialRepository) (int, error) {
	testimonials := []model.Testimonial{
		{Name: "Rahul Verma", Feedback: "Lost 12kg in six months. The trainers keep you honest."},
		{Name: "Emily Carter", Feedback: "Clean equipment, flexible plans, and a great community."},
		{Name: "Tunde Adebayo", Role: "Coach", Feedback: "Proud to train such a motivated crowd every morning."},
	}

	created := 0
	for _, testimonial := range testimonials {
		_, err := repo.FindByName(ctx, testimonial.Name)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}
		testimonial := testimonial
		if err := repo.Create(ctx, &testimonial); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
