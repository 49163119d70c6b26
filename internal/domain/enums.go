package domain

// AssetStatus is the lifecycle state of an asset. The wire values are the
// Spanish labels the rest of the system (labels, templates, API clients)
// already depends on.
type AssetStatus string

const (
	StatusInWarehouse    AssetStatus = "En Bodega"
	StatusActive         AssetStatus = "Activo"
	StatusInRepair       AssetStatus = "En Reparación"
	StatusOnLoan         AssetStatus = "En Préstamo"
	StatusDecommissioned AssetStatus = "Dado de Baja"
)

func ValidAssetStatuses() []AssetStatus {
	return []AssetStatus{
		StatusInWarehouse,
		StatusActive,
		StatusInRepair,
		StatusOnLoan,
		StatusDecommissioned,
	}
}

func (s AssetStatus) IsValid() bool {
	for _, v := range ValidAssetStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

type UserRole string

const (
	RoleAdmin      UserRole = "Admin"
	RoleTechnician UserRole = "Técnico"
	RoleAccountant UserRole = "Contador"
	RoleAuditor    UserRole = "Auditor"
	RoleEmployee   UserRole = "Empleado"
)

func ValidUserRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleTechnician, RoleAccountant, RoleAuditor, RoleEmployee}
}

func (r UserRole) IsValid() bool {
	for _, v := range ValidUserRoles() {
		if r == v {
			return true
		}
	}
	return false
}

type MaintenanceType string

const (
	MaintenancePreventive  MaintenanceType = "Preventivo"
	MaintenanceCorrective  MaintenanceType = "Correctivo"
	MaintenanceImprovement MaintenanceType = "Mejora"
	MaintenanceDiagnostic  MaintenanceType = "Diagnóstico"
)

func ValidMaintenanceTypes() []MaintenanceType {
	return []MaintenanceType{
		MaintenancePreventive,
		MaintenanceCorrective,
		MaintenanceImprovement,
		MaintenanceDiagnostic,
	}
}

func (m MaintenanceType) IsValid() bool {
	for _, v := range ValidMaintenanceTypes() {
		if m == v {
			return true
		}
	}
	return false
}

type AuditStatus string

const (
	AuditInProgress AuditStatus = "En Progreso"
	AuditCompleted  AuditStatus = "Completada"
	AuditCancelled  AuditStatus = "Cancelada"
)

func (s AuditStatus) IsValid() bool {
	return s == AuditInProgress || s == AuditCompleted || s == AuditCancelled
}

type ScanResult string

const (
	ScanOK            ScanResult = "OK"
	ScanWrongLocation ScanResult = "Ubicación Incorrecta"
	ScanNotFound      ScanResult = "No Encontrado"
	ScanUnknownAsset  ScanResult = "Activo Desconocido"
)

func ValidScanResults() []ScanResult {
	return []ScanResult{ScanOK, ScanWrongLocation, ScanNotFound, ScanUnknownAsset}
}

func (s ScanResult) IsValid() bool {
	for _, v := range ValidScanResults() {
		if s == v {
			return true
		}
	}
	return false
}
