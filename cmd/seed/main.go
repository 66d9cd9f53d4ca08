package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go-pm/internal/common/models"
	"go-pm/internal/config"
	"go-pm/internal/features/record"
	"go-pm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DBName)

	fmt.Println("Starting demo data seeding...")

	// 1. Seed Tenant
	tenantCol := db.Collection("tenants")
	tenantName := "Acme Construction"
	var tenant models.Tenant
	err = tenantCol.FindOne(ctx, bson.M{"name": tenantName}).Decode(&tenant)
	if err != nil {
		tenant = models.Tenant{
			ID:        primitive.NewObjectID(),
			Name:      tenantName,
			Domain:    utils.Slugify(tenantName),
			Plan:      "business",
			Status:    "active",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := tenantCol.InsertOne(ctx, tenant); err != nil {
			log.Fatalf("Failed to create tenant: %v", err)
		}
		fmt.Printf("Created tenant: %s\n", tenant.Name)
	} else {
		fmt.Printf("Tenant %s already exists\n", tenant.Name)
	}

	// 2. Seed Admin User
	userCol := db.Collection("users")
	adminEmail := "admin@acme.test"
	var admin models.User
	err = userCol.FindOne(ctx, bson.M{"email": adminEmail}).Decode(&admin)
	if err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		admin = models.User{
			ID:        primitive.NewObjectID(),
			TenantID:  tenant.ID,
			Name:      "Admin User",
			Email:     adminEmail,
			Password:  string(hashed),
			Role:      "admin",
			Status:    "active",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := userCol.InsertOne(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		fmt.Printf("Created admin user: %s (password: admin123)\n", adminEmail)
	} else {
		fmt.Printf("Admin user %s already exists\n", adminEmail)
	}

	// 3. Seed Entity Records
	recordCol := db.Collection("entity_records")
	seeded := 0

	for kind, rows := range demoData() {
		existing, _ := recordCol.CountDocuments(ctx, bson.M{"tenant_id": tenant.ID, "kind": kind})
		if existing > 0 {
			fmt.Printf("Kind %s already has %d records, skipping\n", kind, existing)
			continue
		}

		docs := make([]interface{}, 0, len(rows))
		for _, data := range rows {
			created := time.Now().AddDate(0, 0, -rand.Intn(90))
			docs = append(docs, record.EntityRecord{
				ID:        primitive.NewObjectID(),
				TenantID:  tenant.ID,
				Kind:      kind,
				Data:      data,
				CreatedBy: admin.ID.Hex(),
				UpdatedBy: admin.ID.Hex(),
				CreatedAt: created,
				UpdatedAt: created,
			})
		}
		if _, err := recordCol.InsertMany(ctx, docs); err != nil {
			log.Printf("Failed to seed %s: %v", kind, err)
			continue
		}
		fmt.Printf("Seeded %d %s\n", len(docs), kind)
		seeded += len(docs)
	}

	fmt.Printf("Done. %d records seeded.\n", seeded)
}

func demoData() map[string][]map[string]interface{} {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}

	return map[string][]map[string]interface{}{
		"projects": {
			{"name": "Harbor Bridge Retrofit", "code": "HBR-01", "status": "active", "health": "on_track", "progress": 62, "budget": 1200000, "start_date": day(-120), "due_date": day(60), "project_manager": "Dana Whitfield", "team_size": 14},
			{"name": "Office Tower Fit-out", "code": "OTF-07", "status": "active", "health": "at_risk", "progress": 38, "budget": 450000, "start_date": day(-60), "due_date": day(30), "project_manager": "Marcus Lee", "team_size": 8},
			{"name": "Warehouse Expansion", "code": "WEX-03", "status": "planning", "health": "on_track", "progress": 5, "budget": 800000, "start_date": day(10), "due_date": day(180), "project_manager": "Dana Whitfield", "team_size": 6},
			{"name": "Mall Renovation", "code": "MRN-12", "status": "on_hold", "health": "off_track", "progress": 21, "budget": 2100000, "start_date": day(-200), "due_date": day(90), "project_manager": "Priya Nair", "team_size": 22},
			{"name": "Data Center Shell", "code": "DCS-02", "status": "completed", "health": "on_track", "progress": 100, "budget": 3400000, "start_date": day(-400), "due_date": day(-30), "project_manager": "Marcus Lee", "team_size": 18},
		},
		"tasks": {
			{"title": "Pour foundation slab", "project": "Harbor Bridge Retrofit", "status": "done", "priority": "high", "assigned_to": "Carlos Mendez", "due_date": day(-14), "estimated_hours": 40, "actual_hours": 46, "progress": 100},
			{"title": "Install HVAC ducting", "project": "Office Tower Fit-out", "status": "in_progress", "priority": "medium", "assigned_to": "Aisha Bello", "due_date": day(7), "estimated_hours": 60, "actual_hours": 25, "progress": 40},
			{"title": "Submit permit revisions", "project": "Warehouse Expansion", "status": "todo", "priority": "urgent", "assigned_to": "Dana Whitfield", "due_date": day(3), "estimated_hours": 8, "actual_hours": 0, "progress": 0},
			{"title": "Review structural drawings", "project": "Mall Renovation", "status": "review", "priority": "high", "assigned_to": "Priya Nair", "due_date": day(5), "estimated_hours": 16, "actual_hours": 14, "progress": 90},
			{"title": "Order steel beams", "project": "Harbor Bridge Retrofit", "status": "in_progress", "priority": "high", "assigned_to": "Carlos Mendez", "due_date": day(10), "estimated_hours": 4, "actual_hours": 2, "progress": 50},
			{"title": "Final site cleanup", "project": "Data Center Shell", "status": "done", "priority": "low", "assigned_to": "Aisha Bello", "due_date": day(-35), "estimated_hours": 24, "actual_hours": 20, "progress": 100},
		},
		"documents": {
			{"title": "HBR Structural Report", "filename": "hbr_structural_q2.pdf", "type": "report", "size": 2457600, "status": "approved", "project": "Harbor Bridge Retrofit", "uploaded_by": "Priya Nair", "uploaded_at": day(-20), "version": 3, "description": "Quarterly structural inspection findings"},
			{"title": "OTF Fit-out Contract", "filename": "otf_contract_signed.pdf", "type": "contract", "size": 891200, "status": "approved", "project": "Office Tower Fit-out", "uploaded_by": "Marcus Lee", "uploaded_at": day(-55), "version": 1, "description": "Signed fit-out contract with tenant"},
			{"title": "WEX Site Drawing A-101", "filename": "wex_a101_rev2.dwg", "type": "drawing", "size": 5242880, "status": "in_review", "project": "Warehouse Expansion", "uploaded_by": "Dana Whitfield", "uploaded_at": day(-3), "version": 2, "description": "Ground floor plan revision"},
			{"title": "March Progress Invoice", "filename": "invoice_2026_03.pdf", "type": "invoice", "size": 145000, "status": "draft", "project": "Mall Renovation", "uploaded_by": "Priya Nair", "uploaded_at": day(-1), "version": 1, "description": ""},
		},
		"users": {
			{"name": "Dana Whitfield", "email": "dana@acme.test", "role": "manager", "status": "active", "tenant": "Acme Construction", "last_login": day(-1), "created_at": day(-300), "phone": "+1-555-0101", "department": "Projects"},
			{"name": "Marcus Lee", "email": "marcus@acme.test", "role": "manager", "status": "active", "tenant": "Acme Construction", "last_login": day(-2), "created_at": day(-280), "phone": "+1-555-0102", "department": "Projects"},
			{"name": "Carlos Mendez", "email": "carlos@acme.test", "role": "member", "status": "active", "tenant": "Acme Construction", "last_login": day(-1), "created_at": day(-250), "phone": "+1-555-0103", "department": "Field Ops"},
			{"name": "Aisha Bello", "email": "aisha@acme.test", "role": "member", "status": "inactive", "tenant": "Acme Construction", "last_login": day(-40), "created_at": day(-240), "phone": "+1-555-0104", "department": "Field Ops"},
			{"name": "Priya Nair", "email": "priya@acme.test", "role": "admin", "status": "active", "tenant": "Acme Construction", "last_login": day(0), "created_at": day(-310), "phone": "+1-555-0105", "department": "Engineering"},
		},
		"tenants": {
			{"name": "Acme Construction", "domain": "acme-construction", "plan": "business", "status": "active", "users_count": 5, "projects_count": 5, "storage_used": "8.4 GB", "created_at": day(-310), "last_activity": day(0)},
			{"name": "Northside Builders", "domain": "northside-builders", "plan": "starter", "status": "trial", "users_count": 2, "projects_count": 1, "storage_used": "120 MB", "created_at": day(-12), "last_activity": day(-2)},
		},
	}
}
