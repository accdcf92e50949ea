package database

import (
	"log"

	"gorm.io/gorm"

	categoryModel "laraigo_backend/internals/features/portal/categories/model"
	resourceModel "laraigo_backend/internals/features/portal/resources/model"
)

// RunSeeder resets categories and graphic resources to the launch content.
// Destructive on those two collections, so it only runs with RUN_SEEDER=true.
func RunSeeder(db *gorm.DB) {
	if err := db.Where("1 = 1").Delete(&categoryModel.CategoryModel{}).Error; err != nil {
		log.Printf("❌ Seeder: clearing categories failed: %v", err)
		return
	}
	if err := db.Where("1 = 1").Delete(&resourceModel.ResourceModel{}).Error; err != nil {
		log.Printf("❌ Seeder: clearing resources failed: %v", err)
		return
	}
	log.Println("🧹 Seeder: data cleared")

	categories := []categoryModel.CategoryModel{
		{
			CategoryTitle:       "Recursos Gráficos",
			CategoryDescription: "Recursos gráficos para estructurar presentaciones, acceder a logos y compartir material con clientes.",
			CategoryImage:       "https://laraigo.com/wp-content/uploads/2026/01/recursos-graficos1.png",
		},
		{
			CategoryTitle:       "Demo Clientes",
			CategoryDescription: "Demo diseñadas para nuestros clientes y también de algunas verticales específicas",
			CategoryImage:       "https://laraigo.com/wp-content/uploads/2026/01/Demo-claro-300x199.png",
		},
		{
			CategoryTitle:       "Cápsulas de Conocimiento",
			CategoryDescription: "Cápsulas de conocimiento con descripciones breves y enlace directo para acceder a cada video.",
			CategoryImage:       "https://laraigo.com/wp-content/uploads/2026/01/respuestas-rapidas.png",
		},
		{
			CategoryTitle:       "Casos de Uso",
			CategoryDescription: "Casos de uso que muestran el potencial de Laraigo a través de funcionalidades específicas.",
			CategoryImage:       "https://laraigo.com/wp-content/uploads/2026/01/casos-de-uso.png",
		},
		{
			CategoryTitle:       "Materiales Comerciales",
			CategoryDescription: "Materiales gráficos y audiovisuales para presentar a clientes y potenciales clientes.",
			CategoryImage:       "https://laraigo.com/wp-content/uploads/2026/01/materiales-comerciales1.png",
		},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Printf("❌ Seeder: categories failed: %v", err)
		return
	}
	log.Println("✅ Seeder: categories seeded")

	// Historical rows carried a `type` keyword instead of an image; they were
	// migrated to icon assets when the imageUrl shape became canonical.
	resources := []resourceModel.ResourceModel{
		{ResourceTitle: "Logos Laraigo", ResourceImageURL: iconAsset("logo"), ResourceURL: "https://drive.google.com"},
		{ResourceTitle: "Logos VCA", ResourceImageURL: iconAsset("logo"), ResourceURL: "https://drive.google.com"},
		{ResourceTitle: "Imágenes Laraigo", ResourceImageURL: iconAsset("image"), ResourceURL: "https://drive.google.com"},
		{ResourceTitle: "Plantillas para presentaciones", ResourceImageURL: iconAsset("template"), ResourceURL: "https://drive.google.com"},
		{ResourceTitle: "Firma pie de mail", ResourceImageURL: iconAsset("mail"), ResourceURL: "https://drive.google.com"},
		{ResourceTitle: "Fondo para Google Meet", ResourceImageURL: iconAsset("video"), ResourceURL: "https://drive.google.com"},
		{ResourceTitle: "Membretes", ResourceImageURL: iconAsset("doc"), ResourceURL: "https://drive.google.com"},
	}
	if err := db.Create(&resources).Error; err != nil {
		log.Printf("❌ Seeder: resources failed: %v", err)
		return
	}
	log.Println("✅ Seeder: resources seeded")
}

func iconAsset(kind string) string {
	return "https://laraigo.com/wp-content/uploads/2026/01/icon-" + kind + ".png"
}
