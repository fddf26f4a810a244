// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"microblog/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	PostsPerUser int
	ShouldClean  bool
	BcryptCost   int
}

// Seed populates the database with demo users, a follow mesh, and microposts.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users...", opts.NumUsers)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	follows, err := f.CreateFollowMesh(users)
	if err != nil {
		return fmt.Errorf("failed to create follow mesh: %w", err)
	}
	log.Printf("%d follow relationships created", follows)

	posts, err := f.CreateMicroposts(users, opts.PostsPerUser)
	if err != nil {
		return fmt.Errorf("failed to create microposts: %w", err)
	}
	log.Printf("%d microposts created", posts)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE microposts, relationships, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Factory{db: db, opts: opts, rand: r}
}

func (f *Factory) bcryptCost() int {
	if f.opts.BcryptCost > 0 {
		return f.opts.BcryptCost
	}
	return bcrypt.MinCost
}

// CreateUsers persists count demo users. The first user is always the fixed
// example account so a known login exists after every seed run.
func (f *Factory) CreateUsers(count int) ([]models.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte("password"), f.bcryptCost())
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)

	if count >= 1 {
		example := models.User{
			Name:           "Example User",
			Email:          "example@example.com",
			PasswordDigest: string(digest),
		}
		if err := f.db.Create(&example).Error; err == nil {
			users = append(users, example)
		}
	}

	for i := len(users); i < count; i++ {
		user := models.User{
			Name: gofakeit.Name(),
			// Counter suffix keeps generated addresses unique.
			Email:          fmt.Sprintf("example-%d@example.org", i),
			PasswordDigest: string(digest),
		}
		if err := f.db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", user.Email, err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// CreateFollowMesh wires a realistic follow graph: every user follows a
// random subset of the others. Returns the number of edges created.
func (f *Factory) CreateFollowMesh(users []models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	for i := range users {
		// Each user follows roughly a third of the population.
		targets := f.rand.Perm(len(users))
		wanted := len(users)/3 + 1
		for _, j := range targets {
			if wanted == 0 {
				break
			}
			if i == j {
				continue
			}
			rel := models.Relationship{
				FollowerID: users[i].ID,
				FollowedID: users[j].ID,
			}
			if err := f.db.Create(&rel).Error; err != nil {
				continue
			}
			created++
			wanted--
		}
	}

	return created, nil
}

// CreateMicroposts persists up to perUser microposts for each user with a
// realistic created_at spread over the past 90 days.
func (f *Factory) CreateMicroposts(users []models.User, perUser int) (int, error) {
	if perUser <= 0 {
		perUser = 5
	}

	created := 0
	for _, user := range users {
		n := f.rand.Intn(perUser) + 1
		for i := 0; i < n; i++ {
			content := gofakeit.Sentence(8)
			if len(content) > models.MaxMicropostLen {
				content = content[:models.MaxMicropostLen]
			}

			daysBack := f.rand.Intn(90)
			minsBack := f.rand.Intn(24 * 60)
			post := models.Micropost{
				Content:   content,
				UserID:    user.ID,
				CreatedAt: time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(minsBack)*time.Minute),
			}
			if err := f.db.Create(&post).Error; err != nil {
				log.Printf("Failed to create micropost for user %d: %v", user.ID, err)
				continue
			}
			created++
		}
	}

	return created, nil
}
