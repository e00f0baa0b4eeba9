package http

import (
	"mumanager-backend/internal/handlers"
	"mumanager-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	companyHandler *handlers.CompanyHandler,
	clientHandler *handlers.ClientHandler,
	contractHandler *handlers.ContractHandler,
	invoiceHandler *handlers.InvoiceHandler,
	revenueHandler *handlers.RevenueHandler,
	dashboardHandler *handlers.DashboardHandler,
	chatbotHandler *handlers.ChatbotHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods("POST")
	r.HandleFunc("/auth/verify-reset-token/{token}", authHandler.VerifyResetToken).Methods("GET")
	r.HandleFunc("/auth/reset-password/{token}", authHandler.ResetPassword).Methods("POST")

	// Protected API routes - Users (self only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.UpdateUser).Methods("PUT")
	usersAPI.HandleFunc("/{id}", userHandler.DeleteUser).Methods("DELETE")

	// Protected API routes - Companies
	companiesAPI := r.PathPrefix("/api/companies").Subrouter()
	companiesAPI.Use(authMiddleware.Authenticate)
	companiesAPI.HandleFunc("", companyHandler.ListCompanies).Methods("GET")
	companiesAPI.HandleFunc("", companyHandler.CreateCompany).Methods("POST")
	companiesAPI.HandleFunc("/{id}", companyHandler.GetCompany).Methods("GET")
	companiesAPI.HandleFunc("/{id}", companyHandler.UpdateCompany).Methods("PUT")
	companiesAPI.HandleFunc("/{id}", companyHandler.DeleteCompany).Methods("DELETE")

	// Protected API routes - Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/company/{companyId}", clientHandler.ListByCompany).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Protected API routes - Contracts
	contractsAPI := r.PathPrefix("/api/contracts").Subrouter()
	contractsAPI.Use(authMiddleware.Authenticate)
	contractsAPI.HandleFunc("", contractHandler.CreateContract).Methods("POST")
	contractsAPI.HandleFunc("/company/{companyId}", contractHandler.ListByCompany).Methods("GET")
	contractsAPI.HandleFunc("/{contractId}", contractHandler.GetContract).Methods("GET")
	contractsAPI.HandleFunc("/{contractId}", contractHandler.UpdateContract).Methods("PUT")
	contractsAPI.HandleFunc("/{contractId}", contractHandler.DeleteContract).Methods("DELETE")

	// Protected API routes - Invoices
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(authMiddleware.Authenticate)
	invoicesAPI.HandleFunc("", invoiceHandler.CreateInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/company/{companyId}", invoiceHandler.ListByCompany).Methods("GET")
	invoicesAPI.HandleFunc("/overdue/{companyId}", invoiceHandler.ListOverdue).Methods("GET")
	invoicesAPI.HandleFunc("/{invoiceId}", invoiceHandler.GetInvoice).Methods("GET")
	invoicesAPI.HandleFunc("/{invoiceId}", invoiceHandler.UpdateInvoice).Methods("PUT")
	invoicesAPI.HandleFunc("/{invoiceId}", invoiceHandler.DeleteInvoice).Methods("DELETE")
	invoicesAPI.HandleFunc("/{invoiceId}/lines", invoiceHandler.UpdateLines).Methods("PUT")
	invoicesAPI.HandleFunc("/{invoiceId}/send-email", invoiceHandler.SendByEmail).Methods("POST")
	invoicesAPI.HandleFunc("/{invoiceId}/send-reminder", invoiceHandler.SendReminder).Methods("POST")

	// Protected API routes - Revenue (companyId via header)
	revenueAPI := r.PathPrefix("/api/revenue").Subrouter()
	revenueAPI.Use(authMiddleware.Authenticate)
	revenueAPI.HandleFunc("/total", revenueHandler.Total).Methods("GET")
	revenueAPI.HandleFunc("/period", revenueHandler.Period).Methods("GET")
	revenueAPI.HandleFunc("/client/{id}", revenueHandler.ByClient).Methods("GET")
	revenueAPI.HandleFunc("/compare", revenueHandler.Compare).Methods("GET")
	revenueAPI.HandleFunc("/monthly", revenueHandler.Monthly).Methods("GET")
	revenueAPI.HandleFunc("/years", revenueHandler.Years).Methods("GET")
	revenueAPI.HandleFunc("/cumulative", revenueHandler.Cumulative).Methods("GET")
	revenueAPI.HandleFunc("/top-clients", revenueHandler.TopClients).Methods("GET")
	revenueAPI.HandleFunc("/payment-status", revenueHandler.PaymentStatus).Methods("GET")

	// Protected API routes - Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/monthly-revenue/{companyId}", dashboardHandler.MonthlyRevenue).Methods("GET")
	dashboardAPI.HandleFunc("/ratio/{companyId}", dashboardHandler.Ratio).Methods("GET")

	// Protected API routes - Chatbot
	chatbotAPI := r.PathPrefix("/api/chatbot").Subrouter()
	chatbotAPI.Use(authMiddleware.Authenticate)
	chatbotAPI.HandleFunc("/message", chatbotHandler.Message).Methods("POST")
	chatbotAPI.HandleFunc("/conversations", chatbotHandler.ListConversations).Methods("GET")
	chatbotAPI.HandleFunc("/conversations/{id}", chatbotHandler.GetConversation).Methods("GET")
	chatbotAPI.HandleFunc("/conversations/{id}", chatbotHandler.DeleteConversation).Methods("DELETE")

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
