package migrations

import "gorm.io/gorm"

// migration003Up creates indexes for the listing filters and report queries
func migration003Up(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_documentos_tipo ON documentos(tipo)",
		"CREATE INDEX IF NOT EXISTS idx_documentos_autor ON documentos(autor)",
		"CREATE INDEX IF NOT EXISTS idx_documentos_situacao ON documentos(situacao)",
		"CREATE INDEX IF NOT EXISTS idx_documentos_ano ON documentos(ano)",
		"CREATE INDEX IF NOT EXISTS idx_documentos_data_apresentacao ON documentos(data_apresentacao DESC)",

		"CREATE INDEX IF NOT EXISTS idx_agenda_eventos_tipo ON agenda_eventos(tipo)",
		"CREATE INDEX IF NOT EXISTS idx_agenda_eventos_status ON agenda_eventos(status)",
		"CREATE INDEX IF NOT EXISTS idx_agenda_eventos_data_evento ON agenda_eventos(data_evento)",

		"CREATE INDEX IF NOT EXISTS idx_eleitores_bairro ON eleitores(bairro)",
		"CREATE INDEX IF NOT EXISTS idx_eleitores_data_cadastro ON eleitores(data_cadastro DESC)",
		"CREATE INDEX IF NOT EXISTS idx_eleitores_data_nascimento ON eleitores(data_nascimento)",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration003Down drops the indexes created by migration003Up
func migration003Down(db *gorm.DB) error {
	indexes := []string{
		"idx_documentos_tipo",
		"idx_documentos_autor",
		"idx_documentos_situacao",
		"idx_documentos_ano",
		"idx_documentos_data_apresentacao",
		"idx_agenda_eventos_tipo",
		"idx_agenda_eventos_status",
		"idx_agenda_eventos_data_evento",
		"idx_eleitores_bairro",
		"idx_eleitores_data_cadastro",
		"idx_eleitores_data_nascimento",
	}

	for _, index := range indexes {
		if err := db.Exec("DROP INDEX IF EXISTS " + index).Error; err != nil {
			return err
		}
	}

	return nil
}
