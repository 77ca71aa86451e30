package database

import (
	"fmt"
	"log"

	"gagyebu/config"
	"gagyebu/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 데이터베이스 연결 초기화
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 커넥션 풀
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// 테이블 자동 마이그레이션.
	// monthly_deposits 의 (user_id, month), expense_settlements 의
	// (month, category_id, to_user), user_category_accounts 의
	// (username, category_id) 유니크 인덱스가 여기서 함께 생성된다.
	if err := DB.AutoMigrate(
		&models.User{},
		&models.BankAccount{},
		&models.BudgetCategory{},
		&models.PaymentMethod{},
		&models.Expense{},
		&models.MonthlyDeposit{},
		&models.DepositItem{},
		&models.ExpenseSettlement{},
		&models.UserCategoryAccount{},
		&models.PendingExpense{},
	); err != nil {
		return err
	}

	log.Println("데이터베이스 초기화 완료")
	return nil
}

// GetDB 데이터베이스 연결 반환
func GetDB() *gorm.DB {
	return DB
}
