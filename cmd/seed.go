/*
Copyright © 2025 contempsico
*/
package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/contempsico/portal-be/config"
	"github.com/contempsico/portal-be/database"
	"github.com/contempsico/portal-be/repository"
	"github.com/contempsico/portal-be/repository/memory"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset into MongoDB",
	Long: `Loads the demo users, announcements, calendar events, tasks and
resource catalogs into the configured MongoDB database. Existing records
with the same ids are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		mongoClient, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database(cfg.MongoDatabase)

		userRepo := repository.NewUserRepo(mongoDb)
		taskRepo := repository.NewTaskRepo(mongoDb)
		announcementRepo := repository.NewAnnouncementRepo(mongoDb)
		eventRepo := repository.NewEventRepo(mongoDb)
		trainingRepo := repository.NewTrainingRepo(mongoDb)
		regulationRepo := repository.NewRegulationRepo(mongoDb)
		linkRepo := repository.NewLinkRepo(mongoDb)
		servicePriceRepo := repository.NewServicePriceRepo(mongoDb)
		psychologistRepo := repository.NewPsychologistRepo(mongoDb)

		fixtures := memory.DemoFixtures(time.Now())
		for _, user := range fixtures.Users {
			if err := userRepo.CreateUser(ctx, user); err != nil {
				log.Printf("Skipping user %s: %v", user.Email, err)
			}
		}
		for _, announcement := range fixtures.Announcements {
			if err := announcementRepo.CreateAnnouncement(ctx, announcement); err != nil {
				log.Printf("Skipping announcement %s: %v", announcement.ID, err)
			}
		}
		for _, event := range fixtures.Events {
			if err := eventRepo.CreateEvent(ctx, event); err != nil {
				log.Printf("Skipping event %s: %v", event.ID, err)
			}
		}
		for _, task := range fixtures.Tasks {
			if err := taskRepo.CreateTask(ctx, task); err != nil {
				log.Printf("Skipping task %s: %v", task.ID, err)
			}
		}
		for _, training := range fixtures.Trainings {
			if err := trainingRepo.CreateTraining(ctx, training); err != nil {
				log.Printf("Skipping training %s: %v", training.ID, err)
			}
		}
		for _, section := range fixtures.Regulations {
			if err := regulationRepo.CreateRegulation(ctx, section); err != nil {
				log.Printf("Skipping regulation %s: %v", section.ID, err)
			}
		}
		for _, link := range fixtures.Links {
			if err := linkRepo.CreateLink(ctx, link); err != nil {
				log.Printf("Skipping link %s: %v", link.ID, err)
			}
		}
		for _, price := range fixtures.Services {
			if err := servicePriceRepo.CreateService(ctx, price); err != nil {
				log.Printf("Skipping service %s: %v", price.ID, err)
			}
		}
		for _, psychologist := range fixtures.Psychologists {
			if err := psychologistRepo.CreatePsychologist(ctx, psychologist); err != nil {
				log.Printf("Skipping psychologist %s: %v", psychologist.ID, err)
			}
		}

		log.Println("Seed finished")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
