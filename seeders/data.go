package seeders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-system/pkg/constants"
)

var (
	employeeFixedID      = uuid.New().String()
	employeeFreelancerID = uuid.New().String()
	equipmentTableID     = uuid.New().String()
	equipmentSoundID     = uuid.New().String()
	eventDemoID          = uuid.New().String()
)

func seedEmployees(ctx context.Context, db *pgxpool.Pool) error {
	rows := [][]interface{}{
		{employeeFixedID, "Carlos Mendes", "Operations lead", constants.EmployeeTypeFixed, 3000, 0, "2024-03-01"},
		{employeeFreelancerID, "Ana Souza", "Rigger", constants.EmployeeTypeFreelancer, 0, 350, "2024-06-15"},
	}
	for _, r := range rows {
		_, err := db.Exec(ctx, `
			INSERT INTO employees (id, name, position, type, fixed_salary, daily_rate, hire_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, r...)
		if err != nil {
			return err
		}
	}

	_, err := db.Exec(ctx, `
		INSERT INTO employee_dailies (employee_id, service_date, daily_value, additional_value, description)
		VALUES ($1, CURRENT_DATE, 0, 350, 'weekend setup bonus'),
		       ($2, CURRENT_DATE, 850, 0, 'full day on site')
	`, employeeFixedID, employeeFreelancerID)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO employee_payments (employee_id, payment_date, amount, description)
		VALUES ($1, CURRENT_DATE, 3000, 'monthly salary'),
		       ($2, CURRENT_DATE, 500, 'advance')
	`, employeeFixedID, employeeFreelancerID)
	return err
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	type seedItem struct {
		id       string
		name     string
		category string
		dims     string
		weight   float64
		count    int
	}
	items := []seedItem{
		{equipmentTableID, "Folding table", "Furniture", "180x75x74 cm", 12.5, 4},
		{equipmentSoundID, "PA speaker", "Sound", "35x32x58 cm", 18.0, 2},
	}

	for _, it := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO equipment (id, name, category, dimensions, weight,
			                       total_quantity, available_quantity, maintenance_quantity, unavailable_quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $6, 0, 0)
			ON CONFLICT (id) DO NOTHING
		`, it.id, it.name, it.category, it.dims, it.weight, it.count)
		if err != nil {
			return err
		}
		for i := 1; i <= it.count; i++ {
			_, err := db.Exec(ctx, `
				INSERT INTO equipment_units (equipment_id, unit_identifier, status)
				VALUES ($1, $2, $3)
			`, it.id, fmt.Sprintf("%s #%d", it.name, i), constants.UnitStatusAvailable)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedEvents(ctx context.Context, db *pgxpool.Pool) error {
	eventDate := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	setupDate := time.Now().AddDate(0, 0, 13).Format("2006-01-02")

	_, err := db.Exec(ctx, `
		INSERT INTO events (id, client_name, event_location, setup_date, setup_time, event_date, total_cost, status)
		VALUES ($1, 'Prefeitura Municipal', 'Central square', $2, '08:00', $3, 4500, $4)
		ON CONFLICT (id) DO NOTHING
	`, eventDemoID, setupDate, eventDate, constants.EventStatusPlanned)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO event_equipment_items (event_id, equipment_id, quantity)
		VALUES ($1, $2, 2), ($1, $3, 1)
	`, eventDemoID, equipmentTableID, equipmentSoundID)
	return err
}
