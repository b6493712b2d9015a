package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rollodex/brandcentral/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema, err := os.ReadFile("../../migrations/init.sql")
	assert.NoError(t, err)

	_, err = db.Exec(string(schema))
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertUser(t *testing.T, db *sqlx.DB, companyType string) uuid.UUID {
	t.Helper()

	user := &models.UserDB{
		UserID:      uuid.New(),
		Email:       fmt.Sprintf("%s@example.com", uuid.New()),
		FirstName:   "Test",
		LastName:    "User",
		Role:        companyType + "_admin",
		CompanyName: "Test Co",
		CompanyType: companyType,
		IsActive:    true,
	}
	assert.NoError(t, NewUserWriteRepository(db).Create(context.Background(), user))

	return user.UserID
}

func insertBrand(t *testing.T, db *sqlx.DB, ownerID uuid.UUID, name string, score int, public bool) uuid.UUID {
	t.Helper()

	brand := &models.BrandDB{
		BrandID:                uuid.New(),
		OwnerID:                ownerID,
		Name:                   name,
		ProfileCompletionScore: score,
		IsPublic:               public,
	}
	assert.NoError(t, NewBrandWriteRepository(db).Create(context.Background(), brand))

	return brand.BrandID
}

func TestBrandReadRepository_List_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewBrandReadRepository(db)

	owner := insertUser(t, db, "brand")
	insertBrand(t, db, owner, "Low Score", 22, true)
	insertBrand(t, db, owner, "High Score", 89, true)
	insertBrand(t, db, owner, "Hidden", 100, false)

	brands, err := repo.List(ctx, nil, nil, 20, 0)
	assert.NoError(t, err)
	if assert.Len(t, brands, 2) {
		assert.Equal(t, "High Score", brands[0].Name)
		assert.Equal(t, "Low Score", brands[1].Name)
	}

	total, err := repo.Count(ctx, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, total)

	search := "high"
	brands, err = repo.List(ctx, &search, nil, 20, 0)
	assert.NoError(t, err)
	if assert.Len(t, brands, 1) {
		assert.Equal(t, "High Score", brands[0].Name)
	}
}

func TestRelationshipWriteRepository_Create_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewRelationshipWriteRepository(db)

	owner := insertUser(t, db, "brand")
	retailer := insertUser(t, db, "retailer")
	brandID := insertBrand(t, db, owner, "Acme Goods", 50, true)

	rel := &models.RelationshipDB{
		RelationshipID: uuid.New(),
		BrandID:        brandID,
		RetailerID:     retailer,
		Status:         models.StatusProspective,
		Priority:       models.PriorityNormal,
		CreatedBy:      retailer,
	}
	assert.NoError(t, repo.Create(ctx, rel))

	// Second row for the same pair trips the UNIQUE constraint.
	dup := *rel
	dup.RelationshipID = uuid.New()
	err := repo.Create(ctx, &dup)
	assert.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	reads := NewRelationshipReadRepository(db)

	got, err := reads.GetByPair(ctx, brandID, retailer)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, rel.RelationshipID, got.RelationshipID)
	}

	got, err = reads.GetByID(ctx, rel.RelationshipID)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, brandID, got.BrandID)
	}

	got, err = reads.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestActivityWriteRepository_Record_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := insertUser(t, db, "retailer")

	entityID := uuid.New()
	err := NewActivityWriteRepository(db).Record(ctx, &models.ActivityDB{
		ActivityID: uuid.New(),
		UserID:     userID,
		Action:     "user_login",
		EntityType: "user",
		EntityID:   &entityID,
		Metadata:   []byte(`{"source":"test"}`),
		IP:         "127.0.0.1",
		UserAgent:  "integration-test",
	})
	assert.NoError(t, err)

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM activity_log WHERE user_id=$1", userID))
	assert.Equal(t, 1, count)
}
